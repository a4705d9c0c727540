package plugin

// Result is the outcome a plugin reports for a message.
type Result int

const (
	// ResultUnavailable is the value the host initializes messages with; a
	// plugin that leaves it untouched did not handle the message.
	ResultUnavailable Result = iota
	ResultError
	ResultOK
	// ResultFallback asks the host to review the transaction with its generic display.
	ResultFallback
)

func (r Result) String() string {
	switch r {
	case ResultUnavailable:
		return "unavailable"
	case ResultError:
		return "error"
	case ResultOK:
		return "ok"
	case ResultFallback:
		return "fallback"
	}
	return "unknown"
}

// UIType tells the host how to lay out plugin screens.
type UIType int

const (
	UITypeGeneric UIType = iota
)

// MessageType names a plugin message, for logs and metrics.
type MessageType int

const (
	MessageInitContract MessageType = iota
	MessageProvideParameter
	MessageFinalize
	MessageQueryContractID
	MessageQueryContractUI
)

func (m MessageType) String() string {
	switch m {
	case MessageInitContract:
		return "init_contract"
	case MessageProvideParameter:
		return "provide_parameter"
	case MessageFinalize:
		return "finalize"
	case MessageQueryContractID:
		return "query_contract_id"
	case MessageQueryContractUI:
		return "query_contract_ui"
	}
	return "unknown"
}
