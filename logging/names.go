package logging

const (
	NameEth2Plugin     = "Eth2Plugin"
	NameHost           = "Host"
	NameKeyDeriver     = "KeyDeriver"
	NameDepositBuilder = "DepositBuilder"
	NameMetrics        = "Metrics"

	NameBuildDeposit          = "BuildDeposit"
	NameReviewTx              = "ReviewTx"
	NameWithdrawalCredentials = "WithdrawalCredentials"
)
