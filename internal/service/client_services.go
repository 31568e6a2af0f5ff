package service

import (
	"time"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/metrics"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/utils"
	"github.com/MKhiriev/go-cloud-keeper/internal/validators"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
)

const (
	defaultRetryAttempts = 10
	defaultRetryDelay    = time.Second
)

// Dependencies groups the collaborators shared by every client service.
// Nil optional fields get defaults in [NewClientServices].
type Dependencies struct {
	Adapter  adapter.ServerAdapter
	Storages *store.ClientStorages
	KeyChain crypto.KeyChainService
	Pool     *workers.Pool

	Session   *ClientSession
	Observer  KeyEventObserver
	Directory PublicKeyDirectory
	Validator validators.Validator
	Metrics   metrics.CryptoMetrics
	UUIDs     *utils.UUIDGenerator
	Logger    *logger.Logger

	// RetryAttempts and RetryDelay bound the upload finalization polling.
	RetryAttempts int
	RetryDelay    time.Duration
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Storages == nil {
		d.Storages = &store.ClientStorages{}
	}
	if d.Session == nil {
		d.Session = NewClientSession()
	}
	if d.Observer == nil {
		d.Observer = NopObserver{}
	}
	if d.Directory == nil {
		d.Directory = NewAdapterPublicKeyDirectory(d.Adapter)
	}
	if d.Validator == nil {
		d.Validator = validators.NewCredentialsValidator()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.NoOp()
	}
	if d.UUIDs == nil {
		d.UUIDs = utils.NewUUIDGenerator()
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if d.RetryAttempts <= 0 {
		d.RetryAttempts = defaultRetryAttempts
	}
	if d.RetryDelay <= 0 {
		d.RetryDelay = defaultRetryDelay
	}
	return d
}

func (d Dependencies) guard() *sessionGuard {
	return &sessionGuard{
		session:  d.Session,
		sessions: d.Storages.Session,
		adapter:  d.Adapter,
		observer: d.Observer,
		logger:   d.Logger,
	}
}

type ClientServices struct {
	Session *ClientSession

	AuthService     ClientAuthService
	KeyService      ClientKeyService
	KeyPairService  ClientKeyPairService
	MetadataService ClientMetadataService
	ShareService    ClientShareService
	LinkService     ClientLinkService
	UploadService   ClientUploadService
	KeySyncJob      ClientKeySyncJob
}

func NewClientServices(deps Dependencies) *ClientServices {
	deps = deps.withDefaults()

	keyPairSvc := NewClientKeyPairService(deps)
	keySvc := NewClientKeyService(deps, keyPairSvc)
	metadataSvc := NewClientMetadataService(deps)

	return &ClientServices{
		Session:         deps.Session,
		AuthService:     NewClientAuthService(deps, keySvc, keyPairSvc),
		KeyService:      keySvc,
		KeyPairService:  keyPairSvc,
		MetadataService: metadataSvc,
		ShareService:    NewClientShareService(deps),
		LinkService:     NewClientLinkService(deps, metadataSvc),
		UploadService:   NewClientUploadService(deps),
		KeySyncJob:      NewClientKeySyncJob(keySvc, keyPairSvc, deps.Session, deps.Logger),
	}
}
