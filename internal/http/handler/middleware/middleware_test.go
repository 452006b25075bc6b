package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"solpay/internal/http/handler/middleware"
	"solpay/internal/http/handler/middleware/fake"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		seen string
		next http.Handler
		w    *httptest.ResponseRecorder
		req  *http.Request
	)

	BeforeEach(func() {
		seen = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestID(r.Context())
		})
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	})

	JustBeforeEach(func() {
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
	})

	When("the client sends no id", func() {
		It("should generate one and echo it", func() {
			Expect(uuid.Validate(seen)).To(Succeed())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
		})
	})

	When("the client sends a valid id", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "0b7d3c4e-1f2a-4b5c-8d6e-7f8091a2b3c4")
		})

		It("should reuse it", func() {
			Expect(seen).To(Equal("0b7d3c4e-1f2a-4b5c-8d6e-7f8091a2b3c4"))
		})
	})

	When("the client sends garbage", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "<script>")
		})

		It("should replace it", func() {
			Expect(seen).NotTo(Equal("<script>"))
			Expect(uuid.Validate(seen)).To(Succeed())
		})
	})
})

var _ = Describe("AuthMiddleware", func() {
	var (
		fakeValidator *fake.TokenValidator
		called        bool
		subject       string
		w             *httptest.ResponseRecorder
		req           *http.Request
	)

	BeforeEach(func() {
		called = false
		subject = ""
		fakeValidator = new(fake.TokenValidator)
		fakeValidator.ValidateReturns(jwt.MapClaims{"sub": "3f1c2a9e-6d0b-4c55-9a8e-2b7f0d1e4c6a"}, nil)
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/v1/transfers", nil)
		req.Header.Set(middleware.AuthTokenHeader, "token")
	})

	JustBeforeEach(func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			subject = middleware.Subject(r.Context())
		})
		middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeValidator).Authenticate(next).ServeHTTP(w, req)
	})

	When("the token is valid", func() {
		It("should store the subject", func() {
			Expect(called).To(BeTrue())
			Expect(subject).To(Equal("3f1c2a9e-6d0b-4c55-9a8e-2b7f0d1e4c6a"))
			Expect(fakeValidator.ValidateArgsForCall(0)).To(Equal("token"))
		})
	})

	When("the header is missing", func() {
		BeforeEach(func() {
			req.Header.Del(middleware.AuthTokenHeader)
		})

		It("should return 401 without validating", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(called).To(BeFalse())
			Expect(fakeValidator.ValidateCallCount()).To(Equal(0))
		})
	})

	When("the token is rejected", func() {
		BeforeEach(func() {
			fakeValidator.ValidateReturns(nil, errors.New("token expired"))
		})

		It("should return 401", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("token is not valid"))
			Expect(called).To(BeFalse())
		})
	})

	When("the token has no subject", func() {
		BeforeEach(func() {
			fakeValidator.ValidateReturns(jwt.MapClaims{"exp": 1}, nil)
		})

		It("should return 401", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(called).To(BeFalse())
		})
	})
})

var _ = Describe("RateLimitMiddleware", func() {
	var (
		limit http.Handler
		calls int
	)

	BeforeEach(func() {
		calls = 0
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		})
		limit = middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 0.001, 2, 10*time.Millisecond).Limit(next)
	})

	It("should let the burst through and refuse the rest", func() {
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			limit.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/transfers", nil))
			codes = append(codes, w.Code)
		}

		Expect(codes).To(Equal([]int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}))
		Expect(calls).To(Equal(2))
	})

	When("the caller gives up while waiting", func() {
		BeforeEach(func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
			})
			limit = middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 1, 1, time.Minute).Limit(next)
		})

		It("should not call the handler", func() {
			limit.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/transfers", nil))

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			limit.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/transfers", nil).WithContext(ctx))

			Expect(calls).To(Equal(1))
		})
	})
})

var _ = Describe("LoggingMiddleware and MetricsMiddleware", func() {
	It("should pass the response through unchanged", func() {
		router := mux.NewRouter()
		router.Use(middleware.NewMetricsMiddleware().Metrics)
		router.HandleFunc("/v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		}).Methods(http.MethodGet)

		handler := middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(router)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/42", nil))

		Expect(w.Code).To(Equal(http.StatusTeapot))
		Expect(w.Body.String()).To(Equal("short and stout"))
	})
})
