package ratelimit_test

import (
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/PaulBabatuyi/portfolio/internal/ratelimit"
)

var _ = Describe("ClientIdentifier", func() {
	DescribeTable("extracts the client address",
		func(headers map[string]string, expected string) {
			req := httptest.NewRequest("POST", "/api/messages", nil)
			for k, v := range headers {
				req.Header.Set(k, v)
			}
			Expect(ClientIdentifier(req)).To(Equal(expected))
		},
		Entry("first forwarded hop", map[string]string{"X-Forwarded-For": "203.0.113.5, 70.41.3.18"}, "203.0.113.5"),
		Entry("trims the forwarded hop", map[string]string{"X-Forwarded-For": "  198.51.100.7 "}, "198.51.100.7"),
		Entry("forwarded wins over real ip", map[string]string{"X-Forwarded-For": "203.0.113.5", "X-Real-IP": "10.0.0.1"}, "203.0.113.5"),
		Entry("real ip fallback", map[string]string{"X-Real-IP": "10.0.0.1"}, "10.0.0.1"),
		Entry("blank first forwarded hop", map[string]string{"X-Forwarded-For": " , 70.41.3.18", "X-Real-IP": "10.0.0.1"}, ""),
		Entry("no headers", map[string]string{}, UnknownClient),
	)

	It("namespaces addresses per endpoint", func() {
		Expect(Key("messages", "203.0.113.5")).To(Equal("messages:203.0.113.5"))
		Expect(Key("testimonials", "203.0.113.5")).NotTo(Equal(Key("messages", "203.0.113.5")))
	})
})
