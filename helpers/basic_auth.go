package helpers

import (
	"net/http"

	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes.
const bcryptMaxLength = 72

type BasicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
	logger       lager.Logger
}

func (bam *BasicAuthenticationMiddleware) BasicAuthenticationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if bam.usernameHash == nil && bam.passwordHash == nil {
			next.ServeHTTP(w, r)
			return
		}

		username, password, authOK := r.BasicAuth()
		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil || bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			bam.logger.Info("basic-authentication-failed", lager.Data{"path": r.URL.Path})
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateBasicAuthMiddleware accepts either clear text or bcrypt hashed credentials.
// Empty credentials produce a middleware that lets every request through.
func CreateBasicAuthMiddleware(logger lager.Logger, ba models.BasicAuth) (*BasicAuthenticationMiddleware, error) {
	bam := &BasicAuthenticationMiddleware{logger: logger}
	if ba.IsEmpty() {
		return bam, nil
	}

	var err error
	bam.usernameHash, err = hashBytes(logger, "username", ba.UsernameHash, ba.Username)
	if err != nil {
		return nil, err
	}
	bam.passwordHash, err = hashBytes(logger, "password", ba.PasswordHash, ba.Password)
	if err != nil {
		return nil, err
	}
	return bam, nil
}

func hashBytes(logger lager.Logger, field string, hash string, clearText string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	if len(clearText) > bcryptMaxLength {
		logger.Error("warning-configured-"+field+"-too-long-using-only-first-72-characters", bcrypt.ErrPasswordTooLong, lager.Data{field + "-length": len(clearText)})
		clearText = clearText[:bcryptMaxLength]
	}
	// MinCost: the clear text value already sits in the config file.
	hashed, err := bcrypt.GenerateFromPassword([]byte(clearText), bcrypt.MinCost)
	if err != nil {
		logger.Error("failed-new-server-"+field, err)
		return nil, err
	}
	return hashed, nil
}
