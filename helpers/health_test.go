package helpers_test

import (
	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("HealthConfig", func() {
	var conf helpers.HealthConfig

	BeforeEach(func() {
		conf = helpers.HealthConfig{ServerConfig: helpers.ServerConfig{Port: 8081}}
	})

	It("accepts no credentials", func() {
		Expect(conf.Validate()).To(Succeed())
	})

	It("accepts clear text credentials", func() {
		conf.BasicAuth = models.BasicAuth{Username: "u", Password: "p"}
		Expect(conf.Validate()).To(Succeed())
	})

	It("accepts hashed credentials", func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		conf.BasicAuth = models.BasicAuth{UsernameHash: string(hash), PasswordHash: string(hash)}
		Expect(conf.Validate()).To(Succeed())
	})

	It("rejects a username together with its hash", func() {
		conf.BasicAuth = models.BasicAuth{Username: "u", UsernameHash: "h", Password: "p"}
		Expect(conf.Validate()).To(MatchError(helpers.ErrConfiguration))
	})

	It("rejects a hash that is not bcrypt", func() {
		conf.BasicAuth = models.BasicAuth{UsernameHash: "nope", Password: "p"}
		Expect(conf.Validate()).To(MatchError(ContainSubstring("username_hash is not a valid bcrypt hash")))
	})

	It("rejects a password without a username", func() {
		conf.BasicAuth = models.BasicAuth{Password: "p"}
		Expect(conf.Validate()).To(MatchError(ContainSubstring("healthcheck username is empty")))
	})

	It("rejects a username without a password", func() {
		conf.BasicAuth = models.BasicAuth{Username: "u"}
		Expect(conf.Validate()).To(MatchError(ContainSubstring("healthcheck password is empty")))
	})

	It("rejects an out of range port", func() {
		conf.ServerConfig.Port = 70000
		Expect(conf.Validate()).To(MatchError(ContainSubstring("out of range")))
	})
})
