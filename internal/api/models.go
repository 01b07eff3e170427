package api

import (
	"github.com/tcp_snm/raffle/internal/service/auth_service"
	"github.com/tcp_snm/raffle/internal/service/entry_service"
	"github.com/tcp_snm/raffle/internal/service/lottery_service"
	"github.com/tcp_snm/raffle/internal/service/prize_service"
)

type Api struct {
	AuthServiceConfig    *auth_service.AuthService
	PrizeServiceConfig   *prize_service.PrizeService
	EntryServiceConfig   *entry_service.EntryService
	LotteryServiceConfig *lottery_service.LotteryService
}
