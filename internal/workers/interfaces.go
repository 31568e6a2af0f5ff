// Package workers runs CPU bound client work (key derivation, metadata
// decryption, keypair generation) on a fixed set of goroutines so that a
// large folder listing never spawns one goroutine per item.
//
// The pool is an explicit object built once at startup and passed to the
// services that need it. There is no package level pool.
package workers

// Worker is a background part of the client started once at startup.
// [Pool] is one.
//
// Implementations must return from Run promptly and do their work on
// goroutines of their own.
type Worker interface {
	Run()
}
