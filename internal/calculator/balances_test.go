package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

var (
	dave = uuid.MustParse("00000000-0000-0000-0000-00000000000d")

	threePeople = []models.Person{
		{ID: alice, Name: "Alice"},
		{ID: bob, Name: "Bob"},
		{ID: carol, Name: "Charlie"},
	}
)

func expense(total float64, paidBy uuid.UUID, splits ...models.Split) models.Expense {
	return models.Expense{
		ID:          uuid.New(),
		Description: "Dinner",
		TotalAmount: total,
		PaidBy:      paidBy,
		Splits:      splits,
		Date:        time.Now(),
	}
}

func settlement(from, to uuid.UUID, amount float64) models.Settlement {
	return models.Settlement{ID: uuid.New(), From: from, To: to, Amount: amount, Date: time.Now()}
}

func split(id uuid.UUID, amount float64) models.Split {
	return models.Split{PersonID: id, Amount: amount}
}

func dinnerForThree() models.Expense {
	return expense(60, alice, split(alice, 20), split(bob, 20), split(carol, 20))
}

func TestCalculateBalances_Empty(t *testing.T) {
	balances, err := CalculateBalances(nil, threePeople, nil)
	require.NoError(t, err)
	assert.Empty(t, balances)
	assert.NotNil(t, balances)
}

func TestCalculateBalances_SimpleEqualSplit(t *testing.T) {
	balances, err := CalculateBalances([]models.Expense{dinnerForThree()}, threePeople, nil)
	require.NoError(t, err)

	assert.Equal(t, []Balance{
		{FromID: bob, ToID: alice, Amount: 20},
		{FromID: carol, ToID: alice, Amount: 20},
	}, balances)
}

func TestCalculateBalances_SettlementReducesBalance(t *testing.T) {
	balances, err := CalculateBalances(
		[]models.Expense{dinnerForThree()},
		threePeople,
		[]models.Settlement{settlement(bob, alice, 20)},
	)
	require.NoError(t, err)

	assert.Equal(t, []Balance{{FromID: carol, ToID: alice, Amount: 20}}, balances)
}

func TestCalculateBalances_FullySettled(t *testing.T) {
	balances, err := CalculateBalances(
		[]models.Expense{dinnerForThree()},
		threePeople,
		[]models.Settlement{settlement(bob, alice, 20), settlement(carol, alice, 20)},
	)
	require.NoError(t, err)
	assert.Empty(t, balances)
}

func TestCalculateBalances_MultipleExpenses(t *testing.T) {
	expenses := []models.Expense{
		expense(90, alice, split(alice, 30), split(bob, 30), split(carol, 30)),
		expense(30, bob, split(alice, 10), split(bob, 10), split(carol, 10)),
	}

	// Alice: +90 - 30 - 10 = +50
	// Bob:   +30 - 30 - 10 = -10
	// Carol:     - 30 - 10 = -40
	balances, err := CalculateBalances(expenses, threePeople, nil)
	require.NoError(t, err)

	assert.Equal(t, []Balance{
		{FromID: bob, ToID: alice, Amount: 10},
		{FromID: carol, ToID: alice, Amount: 40},
	}, balances)
}

func TestCalculateBalances_RoundingAbsorbed(t *testing.T) {
	balances, err := CalculateBalances(
		[]models.Expense{expense(10, alice, split(alice, 3.33), split(bob, 3.33), split(carol, 3.34))},
		threePeople,
		[]models.Settlement{settlement(bob, alice, 3.33), settlement(carol, alice, 3.34)},
	)
	require.NoError(t, err)
	assert.Empty(t, balances)
}

func TestCalculateBalances_OneCentIsSettled(t *testing.T) {
	balances, err := CalculateBalances(
		[]models.Expense{expense(0.01, alice, split(bob, 0.01))},
		threePeople,
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, balances)

	balances, err = CalculateBalances(
		[]models.Expense{expense(0.02, alice, split(bob, 0.02))},
		threePeople,
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, []Balance{{FromID: bob, ToID: alice, Amount: 0.02}}, balances)
}

func TestCalculateBalances_GreedyFirstFit(t *testing.T) {
	people := append(append([]models.Person{}, threePeople...), models.Person{ID: dave, Name: "Dave"})

	// Alice is owed 30, Bob is owed 10; Carol owes 25, Dave owes 15.
	expenses := []models.Expense{
		expense(40, alice, split(alice, 10), split(carol, 25), split(dave, 5)),
		expense(10, bob, split(dave, 10)),
	}

	balances, err := CalculateBalances(expenses, people, nil)
	require.NoError(t, err)

	// Carol fills Alice first; Dave tops up Alice, then pays Bob.
	assert.Equal(t, []Balance{
		{FromID: carol, ToID: alice, Amount: 25},
		{FromID: dave, ToID: alice, Amount: 5},
		{FromID: dave, ToID: bob, Amount: 10},
	}, balances)
}

func TestCalculateBalances_PeopleOrderDrivesMatching(t *testing.T) {
	expenses := []models.Expense{
		expense(10, alice, split(carol, 10)),
		expense(10, bob, split(carol, 10)),
	}

	forward, err := CalculateBalances(expenses, threePeople, nil)
	require.NoError(t, err)
	assert.Equal(t, alice, forward[0].ToID)

	reversed := []models.Person{threePeople[2], threePeople[1], threePeople[0]}
	backward, err := CalculateBalances(expenses, reversed, nil)
	require.NoError(t, err)
	assert.Equal(t, bob, backward[0].ToID)
}

func TestCalculateBalances_UnknownPerson(t *testing.T) {
	stranger := uuid.New()

	_, err := CalculateBalances([]models.Expense{expense(10, stranger, split(alice, 10))}, threePeople, nil)
	assert.ErrorIs(t, err, ErrUnknownPerson)

	_, err = CalculateBalances([]models.Expense{expense(10, alice, split(stranger, 10))}, threePeople, nil)
	assert.ErrorIs(t, err, ErrUnknownPerson)

	_, err = CalculateBalances(nil, threePeople, []models.Settlement{settlement(alice, stranger, 5)})
	assert.ErrorIs(t, err, ErrUnknownPerson)
}

func TestCalculateBalances_ZeroSum(t *testing.T) {
	people := append(append([]models.Person{}, threePeople...), models.Person{ID: dave, Name: "Dave"})
	ids := []uuid.UUID{alice, bob, carol, dave}

	var expenses []models.Expense
	totals := []float64{12.5, 80, 7.25, 64.4, 19.99, 250}
	for i, total := range totals {
		shares := SplitAmountEqually(total, len(ids))
		splits := make([]models.Split, len(ids))
		for j, id := range ids {
			splits[j] = split(id, shares[j])
		}
		expenses = append(expenses, expense(total, ids[i%len(ids)], splits...))
	}
	settlements := []models.Settlement{settlement(dave, alice, 12.34), settlement(carol, bob, 5)}

	members, err := CalculateMemberBalances(expenses, people, settlements)
	require.NoError(t, err)
	balances, err := CalculateBalances(expenses, people, settlements)
	require.NoError(t, err)
	require.NotEmpty(t, balances)

	sent := map[uuid.UUID]money.Cents{}
	received := map[uuid.UUID]money.Cents{}
	for _, b := range balances {
		assert.Greater(t, b.Amount, 0.0)
		sent[b.FromID] += money.FromFloat(b.Amount)
		received[b.ToID] += money.FromFloat(b.Amount)
	}

	for _, m := range members {
		net := money.FromFloat(m.Net)
		switch {
		case net < -1:
			assert.InDelta(t, float64(-net), float64(sent[m.PersonID]), 1, "debtor %s", m.PersonID)
		case net > 1:
			assert.InDelta(t, float64(net), float64(received[m.PersonID]), 1, "creditor %s", m.PersonID)
		default:
			assert.Zero(t, sent[m.PersonID])
			assert.Zero(t, received[m.PersonID])
		}
	}
}

func TestCalculateMemberBalances(t *testing.T) {
	members, err := CalculateMemberBalances(
		[]models.Expense{dinnerForThree()},
		threePeople,
		[]models.Settlement{settlement(bob, alice, 20)},
	)
	require.NoError(t, err)
	require.Len(t, members, 3)

	assert.Equal(t, MemberBalance{PersonID: alice, Paid: 60, Owed: 40, Net: 20}, members[0])
	assert.Equal(t, MemberBalance{PersonID: bob, Paid: 20, Owed: 20, Net: 0}, members[1])
	assert.Equal(t, MemberBalance{PersonID: carol, Paid: 0, Owed: 20, Net: -20}, members[2])

	var total float64
	for _, m := range members {
		total += m.Net
	}
	assert.Less(t, math.Abs(total), SplitTolerance)
}
