package service

import (
	"time"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

func toAPIPerson(p models.Person) api.Person {
	return api.Person{ID: p.ID.String(), Name: p.Name, CreatedAt: p.CreatedAt}
}

func toAPIPeople(people []models.Person) []api.Person {
	out := make([]api.Person, len(people))
	for i, p := range people {
		out[i] = toAPIPerson(p)
	}
	return out
}

func toAPIExpense(e models.Expense) api.Expense {
	splits := make([]api.Split, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = api.Split{PersonID: s.PersonID.String(), Amount: s.Amount}
	}
	return api.Expense{
		ID:          e.ID.String(),
		Description: e.Description,
		TotalAmount: e.TotalAmount,
		PaidBy:      e.PaidBy.String(),
		Splits:      splits,
		Date:        e.Date.Unix(),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

func toAPIExpenses(expenses []models.Expense) []api.Expense {
	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}
	return out
}

func toAPISettlement(s models.Settlement) api.Settlement {
	return api.Settlement{
		ID:        s.ID.String(),
		FromID:    s.From.String(),
		ToID:      s.To.String(),
		Amount:    s.Amount,
		Date:      s.Date.Unix(),
		Note:      s.Note,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
	}
}

func toAPISettlements(settlements []models.Settlement) []api.Settlement {
	out := make([]api.Settlement, len(settlements))
	for i, s := range settlements {
		out[i] = toAPISettlement(s)
	}
	return out
}

func toAPIBalances(balances []calculator.Balance, names map[string]string) []api.Balance {
	out := make([]api.Balance, len(balances))
	for i, b := range balances {
		from, to := b.FromID.String(), b.ToID.String()
		out[i] = api.Balance{
			FromID:   from,
			FromName: names[from],
			ToID:     to,
			ToName:   names[to],
			Amount:   b.Amount,
		}
	}
	return out
}

func toAPIMembers(members []calculator.MemberBalance, names map[string]string) []api.MemberBalance {
	out := make([]api.MemberBalance, len(members))
	for i, m := range members {
		id := m.PersonID.String()
		out[i] = api.MemberBalance{PersonID: id, Name: names[id], Paid: m.Paid, Owed: m.Owed, Net: m.Net}
	}
	return out
}

func toAPIUser(u *models.User) api.User {
	return api.User{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, CreatedAt: u.CreatedAt}
}

// optionalUnix converts Unix seconds to time. A nil value becomes the zero
// time so the store applies its default.
func optionalUnix(sec *int64) time.Time {
	if sec == nil {
		return time.Time{}
	}
	return time.Unix(*sec, 0).UTC()
}
