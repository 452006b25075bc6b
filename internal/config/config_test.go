package config_test

import (
	"os"
	"solpay/internal/config"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewAppConfig", func() {
	var (
		app config.App
		err error
	)

	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
				return
			}
			os.Unsetenv(key)
		})
	}

	unsetEnv := func(key string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
			}
		})
	}

	BeforeEach(func() {
		setEnv("API_PORT", "8080")
		setEnv("SOLANA_RPC_URL", "http://localhost:8899")
		setEnv("DB_CONNECTION_URL", "postgres://localhost/solpay")
		setEnv("JWT_SECRET", "secret")
		setEnv("FEE_PAYER_PRIVATE_KEY", "key")
		unsetEnv("SOLANA_CLUSTER")
		unsetEnv("POLL_INTERVAL")
		unsetEnv("POLL_ATTEMPTS")
		unsetEnv("TRANSFER_RATE_LIMIT")
	})

	JustBeforeEach(func() {
		app, err = config.NewAppConfig()
	})

	When("all required variables are set", func() {
		It("should apply defaults to the optional ones", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.NodeURL).To(Equal("http://localhost:8899"))
			Expect(app.DBConnectionURL).To(Equal("postgres://localhost/solpay"))
			Expect(app.JWTSecret).To(Equal("secret"))
			Expect(app.FeePayerPrivateKey).To(Equal("key"))
			Expect(app.Cluster).To(Equal("mainnet-beta"))
			Expect(app.ChainID()).To(Equal("solana:mainnet-beta"))
			Expect(app.PollInterval).To(Equal(500 * time.Millisecond))
			Expect(app.PollAttempts).To(Equal(120))
			Expect(app.TransferRateLimit).To(Equal(5.0))
		})
	})

	When("optional variables are overridden", func() {
		BeforeEach(func() {
			setEnv("SOLANA_CLUSTER", "devnet")
			setEnv("POLL_INTERVAL", "2s")
			setEnv("POLL_ATTEMPTS", "10")
			setEnv("TRANSFER_RATE_LIMIT", "0.5")
		})

		It("should use the overrides", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.ChainID()).To(Equal("solana:devnet"))
			Expect(app.PollInterval).To(Equal(2 * time.Second))
			Expect(app.PollAttempts).To(Equal(10))
			Expect(app.TransferRateLimit).To(Equal(0.5))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			unsetEnv("FEE_PAYER_PRIVATE_KEY")
		})

		It("should name the missing variable", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable not found: FEE_PAYER_PRIVATE_KEY")))
		})
	})

	When("the poll attempts are not a positive number", func() {
		BeforeEach(func() {
			setEnv("POLL_ATTEMPTS", "-1")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable is invalid: POLL_ATTEMPTS")))
		})
	})

	When("the poll interval cannot be parsed", func() {
		BeforeEach(func() {
			setEnv("POLL_INTERVAL", "soon")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("POLL_INTERVAL")))
		})
	})
})
