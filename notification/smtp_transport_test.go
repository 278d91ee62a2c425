package notification_test

import (
	"context"
	"net"
	"os"
	"sync"
	"time"

	"github.com/contactform/contactapi/helpers"
	"github.com/contactform/contactapi/models"
	"github.com/contactform/contactapi/notification"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"
)

// closedPort returns a local port nothing listens on.
func closedPort() int {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	port := listener.Addr().(*net.TCPAddr).Port
	Expect(listener.Close()).To(Succeed())
	return port
}

var _ = Describe("SMTPTransport with concurrent senders", func() {
	var smtpConf notification.SMTPConfig

	BeforeEach(func() {
		smtpConf = notification.SMTPConfig{
			Host:     "127.0.0.1",
			Port:     closedPort(),
			Username: "owner@example.com",
			Password: "app-password",
			Timeout:  2 * time.Second,
		}
	})

	It("reports every failed send on its own", func() {
		transport, err := notification.NewSMTPTransport(smtpConf)
		Expect(err).NotTo(HaveOccurred())
		email := notification.Email{To: "owner@example.com", From: "owner@example.com", Subject: "New Contact Message", TextBody: "hi", HTMLBody: "<p>hi</p>"}

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := transport.Send(context.Background(), email)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			Expect(err).To(MatchError(ContainSubstring("failed to send email")))
		}
	})

	It("lets several workers share one transport", func() {
		metrics := &spyMetrics{}
		lazyTransport := helpers.NewLazy(func() (notification.Transport, error) {
			return notification.NewSMTPTransport(smtpConf)
		})
		dispatcher := notification.NewDispatcher(notification.DispatcherConfig{
			QueueSize:      20,
			Workers:        4,
			CircuitBreaker: notification.CircuitBreakerConfig{ConsecutiveFailureCount: 100},
		}, lazyTransport,
			notification.NewComposer("owner@example.com"), metrics, lagertest.NewTestLogger("dispatcher"))
		process := ifrit.Invoke(dispatcher)
		defer func() {
			process.Signal(os.Interrupt)
			Eventually(process.Wait()).Should(Receive())
		}()

		for i := 0; i < 20; i++ {
			dispatcher.Dispatch(models.NotificationTask{Name: "Bob", Email: "bob@example.com", Message: "Hello there, world"})
		}

		Eventually(metrics.failed.Load, 10*time.Second).Should(Equal(int32(20)))
		Expect(metrics.sent.Load()).To(BeZero())
	})
})
