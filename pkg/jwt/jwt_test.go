package jwt_test

import (
	"solpay/pkg/jwt"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const subject = "3f1c2a9e-6d0b-4c55-9a8e-2b7f0d1e4c6a"

// signToken mints a token the way the account token issuer does.
func signToken(secret string, issuedAt time.Time, ttl time.Duration) string {
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.MapClaims{
		"sub": subject,
		"iat": issuedAt.Unix(),
		"exp": issuedAt.Add(ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	Expect(err).NotTo(HaveOccurred())
	return signed
}

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		signed  string
	)

	BeforeEach(func() {
		service = jwt.NewJWTService([]byte("test-secret"))
		signed = signToken("test-secret", time.Now(), time.Hour)
	})

	When("the token was signed with the same secret", func() {
		It("should return its claims", func() {
			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal(subject))
		})
	})

	When("the token was signed with another secret", func() {
		It("should reject it", func() {
			_, err := jwt.NewJWTService([]byte("other-secret")).Validate(signed)
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})

	When("the token is malformed", func() {
		It("should reject it", func() {
			_, err := service.Validate("not.a.token")
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})

	When("the token has expired", func() {
		It("should report expiry", func() {
			expired := signToken("test-secret", time.Now().Add(-2*time.Hour), time.Hour)

			_, err := service.Validate(expired)
			Expect(err).To(MatchError(jwt.ErrTokenExpired))
		})
	})

	When("the service clock is past the expiry", func() {
		It("should report expiry", func() {
			later := jwt.NewJWTServiceAt([]byte("test-secret"), func() time.Time {
				return time.Now().Add(2 * time.Hour)
			})

			_, err := later.Validate(signed)
			Expect(err).To(MatchError(jwt.ErrTokenExpired))
		})
	})

	When("the token uses a non hmac algorithm", func() {
		It("should reject it", func() {
			unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": "user"}).
				SignedString(gojwt.UnsafeAllowNoneSignatureType)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(unsigned)
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})
})
