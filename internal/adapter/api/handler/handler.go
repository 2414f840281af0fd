package handler

import (
	"ludomarket/internal/usecase"
)

var (
	catalogHandler *CatalogHandler
	marketHandler  *MarketHandler
	resaleHandler  *ResaleHandler
	walletHandler  *WalletHandler
	payoutHandler  *PayoutHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	purchaseUseCase *usecase.PurchaseUseCase,
	activationUseCase *usecase.ActivationUseCase,
	resaleUseCase *usecase.ResaleUseCase,
	walletUseCase *usecase.WalletUseCase,
	payoutUseCase *usecase.PayoutUseCase,
) {
	catalogHandler = NewCatalogHandler(catalogUseCase)
	marketHandler = NewMarketHandler(purchaseUseCase, activationUseCase)
	resaleHandler = NewResaleHandler(resaleUseCase)
	walletHandler = NewWalletHandler(walletUseCase)
	payoutHandler = NewPayoutHandler(payoutUseCase)
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetMarketHandler() *MarketHandler {
	return marketHandler
}

func GetResaleHandler() *ResaleHandler {
	return resaleHandler
}

func GetWalletHandler() *WalletHandler {
	return walletHandler
}

func GetPayoutHandler() *PayoutHandler {
	return payoutHandler
}
