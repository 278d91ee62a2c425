package helpers_test

import (
	"github.com/contactform/contactapi/helpers"

	"code.cloudfoundry.org/lager/v3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("RedactingWriterWithURLCredSink", func() {
	var (
		buffer *gbytes.Buffer
		logger lager.Logger
	)

	BeforeEach(func() {
		buffer = gbytes.NewBuffer()
		sink, err := helpers.NewRedactingWriterWithURLCredSink(buffer, lager.INFO, []string{"[Pp]ass"}, nil)
		Expect(err).NotTo(HaveOccurred())
		logger = lager.NewLogger("test")
		logger.RegisterSink(sink)
	})

	It("writes redacted json lines with a log_time", func() {
		logger.Info("connecting", lager.Data{"url": "postgres://contact:secret@db:5432/contacts", "email_pass": "abc"})
		Expect(buffer).To(gbytes.Say(`"log_time":"\d{4}-\d{2}-\d{2}T`))
		Expect(buffer.Contents()).To(ContainSubstring(`postgres://contact:*REDACTED*@db:5432/contacts`))
		Expect(buffer.Contents()).To(ContainSubstring(`"email_pass":"*REDACTED*"`))
		Expect(buffer.Contents()).NotTo(ContainSubstring("secret"))
	})

	It("drops messages below the minimum level", func() {
		logger.Debug("noisy")
		Expect(buffer.Contents()).To(BeEmpty())
	})
})
