package logging

import (
	"bytes"
	"testing"

	"code.cloudfoundry.org/lager/v3"
	. "github.com/onsi/gomega"
)

func TestParseLevel(t *testing.T) {
	g := NewWithT(t)

	lvl, err := ParseLevel("")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(lvl).To(Equal(lager.INFO))

	lvl, err = ParseLevel("debug")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(lvl).To(Equal(lager.DEBUG))

	_, err = ParseLevel("verbose")
	g.Expect(err).To(MatchError(ContainSubstring("unsupported log level")))
}

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	logger, err := NewWithWriter(Config{Level: "error"}, "portfolio", &buf)
	g.Expect(err).NotTo(HaveOccurred())

	logger.Info("should-not-appear")
	g.Expect(buf.String()).To(BeEmpty())

	logger.Error("boom", nil, lager.Data{"key": "value"})
	g.Expect(buf.String()).To(ContainSubstring(`"message":"portfolio.boom"`))
}

func TestNewWithWriterPlainText(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	logger, err := NewWithWriter(Config{Level: "info", PlainTextSink: true}, "portfolio", &buf)
	g.Expect(err).NotTo(HaveOccurred())

	logger.Info("started")
	g.Expect(buf.String()).To(ContainSubstring("portfolio.started"))
}
