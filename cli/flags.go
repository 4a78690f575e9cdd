package cli

const (
	FlagHome     = "home"
	FlagFormat   = "format"
	FlagLogLevel = "log-level"

	FlagSessionArg      = "session-arg"
	FlagSessionArgsJSON = "session-args-json"
	FlagPaymentArg      = "payment-arg"
	FlagPaymentArgsJSON = "payment-args-json"
	FlagPaymentAmount   = "payment-amount"
	FlagPublicKey       = "public-key"

	FormatText = "text"
	FormatJSON = "json"
)
