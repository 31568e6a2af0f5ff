package utils

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when an API key is an opaque token rather than a JWT.
var ErrNotJWT = errors.New("api key is not a jwt")

// ParseUserIDFromJWT reads the numeric subject of an API key that is a JWT.
// The signature is not verified; the value is only used to label the local
// session, never to authorize anything.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, errors.Join(ErrNotJWT, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
