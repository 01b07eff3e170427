package lottery_service

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/service"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.ErrorLevel)
	service.InitializeServices()
	os.Exit(m.Run())
}
