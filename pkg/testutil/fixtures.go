package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestCustomerID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestCustomerID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestMemberID    = uuid.MustParse("00000000-0000-0000-0000-000000000010")
	TestAccountID   = uuid.MustParse("00000000-0000-0000-0000-000000000020")
	TestCardID      = uuid.MustParse("00000000-0000-0000-0000-000000000030")
	TestLoanID      = uuid.MustParse("00000000-0000-0000-0000-000000000040")
)
