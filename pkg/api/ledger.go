package api

// Person is a participant in the shared ledger.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Split is one participant's share of an expense.
type Split struct {
	PersonID string  `json:"person_id"`
	Amount   float64 `json:"amount"`
}

// Expense is a shared purchase. Date is a Unix timestamp in seconds.
type Expense struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	TotalAmount float64 `json:"total_amount"`
	PaidBy      string  `json:"paid_by"`
	Splits      []Split `json:"splits"`
	Date        int64   `json:"date"`
	CreatedBy   string  `json:"created_by,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

// Settlement is a direct payment from one person to another. Date is the
// UTC midnight of the settlement day, in Unix seconds.
type Settlement struct {
	ID        string  `json:"id"`
	FromID    string  `json:"from_id"`
	ToID      string  `json:"to_id"`
	Amount    float64 `json:"amount"`
	Date      int64   `json:"date"`
	Note      string  `json:"note,omitempty"`
	CreatedBy string  `json:"created_by,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// Balance is a suggested payment that clears part of a debt.
type Balance struct {
	FromID   string  `json:"from_id"`
	FromName string  `json:"from_name"`
	ToID     string  `json:"to_id"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
}

// MemberBalance is one person's running totals.
type MemberBalance struct {
	PersonID string  `json:"person_id"`
	Name     string  `json:"name"`
	Paid     float64 `json:"paid"`
	Owed     float64 `json:"owed"`
	Net      float64 `json:"net"`
}

type ListPeopleRequest struct{}

type ListPeopleResponse struct {
	People []Person `json:"people"`
}

type AddPersonRequest struct {
	Name string `json:"name"`
}

type AddPersonResponse struct {
	Person Person `json:"person"`
}

type DeletePersonRequest struct {
	ID string `json:"id"`
}

type DeletePersonResponse struct{}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

// AddExpenseRequest records an expense. A nil Date means now.
type AddExpenseRequest struct {
	Description string  `json:"description"`
	TotalAmount float64 `json:"total_amount"`
	PaidBy      string  `json:"paid_by"`
	Splits      []Split `json:"splits"`
	Date        *int64  `json:"date,omitempty"`
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

// ValidateExpenseRequest checks an expense without saving it.
type ValidateExpenseRequest struct {
	Description string  `json:"description"`
	TotalAmount float64 `json:"total_amount"`
	PaidBy      string  `json:"paid_by"`
	Splits      []Split `json:"splits"`
}

type ValidateExpenseResponse struct {
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors"`
	SplitTotal float64  `json:"split_total"`
}

// SplitEvenlyRequest divides Total between PersonIDs, in order.
type SplitEvenlyRequest struct {
	Total     float64  `json:"total"`
	PersonIDs []string `json:"person_ids"`
}

type SplitEvenlyResponse struct {
	Splits []Split `json:"splits"`
}

type ListSettlementsRequest struct{}

type ListSettlementsResponse struct {
	Settlements []Settlement `json:"settlements"`
}

// AddSettlementRequest records a payment. A nil Date means today.
type AddSettlementRequest struct {
	FromID string  `json:"from_id"`
	ToID   string  `json:"to_id"`
	Amount float64 `json:"amount"`
	Date   *int64  `json:"date,omitempty"`
	Note   string  `json:"note,omitempty"`
}

type AddSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

type DeleteSettlementRequest struct {
	ID string `json:"id"`
}

type DeleteSettlementResponse struct{}

type GetBalancesRequest struct{}

type GetBalancesResponse struct {
	Balances []Balance       `json:"balances"`
	Members  []MemberBalance `json:"members"`
}
