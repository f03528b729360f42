package types

import (
	"github.com/leekchan/accounting"
)

// USD formats dollar prices for the terminal report and the dashboard.
var USD = accounting.DefaultAccounting("$", 2)

// Shares formats share volumes with a thousand separator and no symbol.
var Shares = accounting.DefaultAccounting("", 0)
