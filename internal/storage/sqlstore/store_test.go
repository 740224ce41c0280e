package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addPeople(t *testing.T, store *Store, names ...string) []models.Person {
	t.Helper()

	people := make([]models.Person, len(names))
	for i, name := range names {
		people[i] = models.Person{Name: name}
		if err := store.CreatePerson(context.Background(), &people[i]); err != nil {
			t.Fatalf("CreatePerson(%s) failed: %v", name, err)
		}
	}
	return people
}

func TestPeople(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreatePerson generates ID and trims name", func(t *testing.T) {
		person := &models.Person{Name: "  Alice  "}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
		if person.ID == uuid.Nil {
			t.Error("Expected person ID to be generated")
		}
		if person.Name != "Alice" {
			t.Errorf("Name = %q, want %q", person.Name, "Alice")
		}
		if person.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("CreatePerson rejects duplicate names", func(t *testing.T) {
		err := store.CreatePerson(ctx, &models.Person{Name: "Alice"})
		if !errors.Is(err, storage.ErrDuplicateName) {
			t.Errorf("Expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("CreatePerson rejects blank names", func(t *testing.T) {
		if err := store.CreatePerson(ctx, &models.Person{Name: "   "}); err == nil {
			t.Error("Expected error for blank name")
		}
	})

	t.Run("ListPeople keeps insertion order", func(t *testing.T) {
		addPeople(t, store, "Zoe", "Bob", "Mia")

		people, err := store.ListPeople(ctx)
		if err != nil {
			t.Fatalf("ListPeople failed: %v", err)
		}
		want := []string{"Alice", "Zoe", "Bob", "Mia"}
		if len(people) != len(want) {
			t.Fatalf("Got %d people, want %d", len(people), len(want))
		}
		for i, p := range people {
			if p.Name != want[i] {
				t.Errorf("people[%d] = %s, want %s", i, p.Name, want[i])
			}
		}

		n, err := store.CountPeople(ctx)
		if err != nil {
			t.Fatalf("CountPeople failed: %v", err)
		}
		if n != 4 {
			t.Errorf("CountPeople = %d, want 4", n)
		}
	})

	t.Run("GetPerson returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetPerson(ctx, uuid.New())
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	people := addPeople(t, store, "Alice", "Bob", "Charlie")
	alice, bob, charlie := people[0].ID, people[1].ID, people[2].ID

	t.Run("CreateExpense and GetExpense round trip", func(t *testing.T) {
		expense := &models.Expense{
			Description: "  Dinner ",
			TotalAmount: 10,
			PaidBy:      alice,
			Splits: []models.Split{
				{PersonID: alice, Amount: 3.33},
				{PersonID: bob, Amount: 3.33},
				{PersonID: charlie, Amount: 3.34},
			},
			Date:      time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC),
			CreatedBy: "user-1",
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.Description != "Dinner" {
			t.Errorf("Description = %q, want %q", got.Description, "Dinner")
		}
		if got.TotalAmount != 10 {
			t.Errorf("TotalAmount = %v, want 10", got.TotalAmount)
		}
		if got.PaidBy != alice {
			t.Errorf("PaidBy = %s, want %s", got.PaidBy, alice)
		}
		if !got.Date.Equal(expense.Date) {
			t.Errorf("Date = %v, want %v", got.Date, expense.Date)
		}
		if got.CreatedBy != "user-1" {
			t.Errorf("CreatedBy = %q, want user-1", got.CreatedBy)
		}
		if len(got.Splits) != 3 {
			t.Fatalf("Got %d splits, want 3", len(got.Splits))
		}
		if got.Splits[2].PersonID != charlie || got.Splits[2].Amount != 3.34 {
			t.Errorf("Last split = %+v, want Charlie 3.34", got.Splits[2])
		}
	})

	t.Run("CreateExpense runs the validator", func(t *testing.T) {
		err := store.CreateExpense(ctx, &models.Expense{
			Description: "Taxi",
			TotalAmount: 30,
			PaidBy:      alice,
			Splits:      []models.Split{{PersonID: bob, Amount: 10}},
		})
		var verr *calculator.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
	})

	t.Run("CreateExpense rejects unknown payer", func(t *testing.T) {
		err := store.CreateExpense(ctx, &models.Expense{
			Description: "Taxi",
			TotalAmount: 10,
			PaidBy:      uuid.New(),
			Splits:      []models.Split{{PersonID: bob, Amount: 10}},
		})
		if !errors.Is(err, storage.ErrUnknownPerson) {
			t.Errorf("Expected ErrUnknownPerson, got %v", err)
		}
	})

	t.Run("CreateExpense rejects unknown split person", func(t *testing.T) {
		err := store.CreateExpense(ctx, &models.Expense{
			Description: "Taxi",
			TotalAmount: 10,
			PaidBy:      alice,
			Splits:      []models.Split{{PersonID: uuid.New(), Amount: 10}},
		})
		if !errors.Is(err, storage.ErrUnknownPerson) {
			t.Errorf("Expected ErrUnknownPerson, got %v", err)
		}
	})

	t.Run("ListExpenses returns most recently recorded first with splits", func(t *testing.T) {
		// Recorded after Dinner but dated before it
		later := &models.Expense{
			Description: "Lunch",
			TotalAmount: 20,
			PaidBy:      bob,
			Splits:      []models.Split{{PersonID: alice, Amount: 10}, {PersonID: bob, Amount: 10}},
			Date:        time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
		}
		if err := store.CreateExpense(ctx, later); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("Got %d expenses, want 2", len(expenses))
		}
		if expenses[0].Description != "Lunch" {
			t.Errorf("First expense = %s, want Lunch", expenses[0].Description)
		}
		if len(expenses[0].Splits) != 2 || len(expenses[1].Splits) != 3 {
			t.Errorf("Unexpected split counts: %d, %d", len(expenses[0].Splits), len(expenses[1].Splits))
		}
	})

	t.Run("DeletePerson refuses referenced people", func(t *testing.T) {
		err := store.DeletePerson(ctx, charlie)
		if !errors.Is(err, storage.ErrPersonInUse) {
			t.Errorf("Expected ErrPersonInUse, got %v", err)
		}
	})

	t.Run("DeleteExpense cascades splits", func(t *testing.T) {
		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		for _, e := range expenses {
			if err := store.DeleteExpense(ctx, e.ID); err != nil {
				t.Fatalf("DeleteExpense failed: %v", err)
			}
		}

		if err := store.DeleteExpense(ctx, expenses[0].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
		// Charlie is no longer referenced by any split
		if err := store.DeletePerson(ctx, charlie); err != nil {
			t.Errorf("DeletePerson failed: %v", err)
		}
		if err := store.DeletePerson(ctx, charlie); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestCreateExpenseRoundsToCents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	people := addPeople(t, store, "Alice", "Bob", "Charlie", "Dana")
	alice, bob, charlie, dana := people[0].ID, people[1].ID, people[2].ID, people[3].ID

	tests := []struct {
		name    string
		expense models.Expense
		want    []string
	}{
		{
			name: "total below half a cent",
			expense: models.Expense{
				Description: "Gum",
				TotalAmount: 0.004,
				PaidBy:      alice,
				Splits:      []models.Split{{PersonID: bob, Amount: 0.004}},
			},
			want: []string{calculator.MsgTotalNotPositive, calculator.MsgSplitNotPositive},
		},
		{
			name: "half-cent splits round up past the total",
			expense: models.Expense{
				Description: "Candy",
				TotalAmount: 0.02,
				PaidBy:      alice,
				Splits: []models.Split{
					{PersonID: alice, Amount: 0.005},
					{PersonID: bob, Amount: 0.005},
					{PersonID: charlie, Amount: 0.005},
					{PersonID: dana, Amount: 0.005},
				},
			},
			want: []string{"Splits total ($0.04) must equal expense ($0.02)."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.CreateExpense(ctx, &tt.expense)
			var verr *calculator.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if len(verr.Messages) != len(tt.want) {
				t.Fatalf("Messages = %q, want %q", verr.Messages, tt.want)
			}
			for i, msg := range tt.want {
				if verr.Messages[i] != msg {
					t.Errorf("Messages[%d] = %q, want %q", i, verr.Messages[i], msg)
				}
			}
		})
	}

	t.Run("stored amounts are the validated amounts", func(t *testing.T) {
		expense := &models.Expense{
			Description: "Coffee",
			TotalAmount: 4.999,
			PaidBy:      alice,
			Splits:      []models.Split{{PersonID: alice, Amount: 2.501}, {PersonID: bob, Amount: 2.499}},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.TotalAmount != 5 || expense.Splits[0].Amount != 2.5 || expense.Splits[1].Amount != 2.5 {
			t.Errorf("Returned amounts = %v %+v, want 5 and 2.5 each", expense.TotalAmount, expense.Splits)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.TotalAmount != expense.TotalAmount {
			t.Errorf("Stored total = %v, want %v", got.TotalAmount, expense.TotalAmount)
		}
		for i, split := range got.Splits {
			if split.Amount != expense.Splits[i].Amount {
				t.Errorf("Stored split %d = %v, want %v", i, split.Amount, expense.Splits[i].Amount)
			}
		}
		if !calculator.ValidateExpenseInput(calculator.ExpenseInputFrom(*got)).Valid {
			t.Error("Stored expense no longer passes validation")
		}

		balances, err := calculator.CalculateBalances([]models.Expense{*got}, people, nil)
		if err != nil {
			t.Fatalf("CalculateBalances failed: %v", err)
		}
		if len(balances) != 1 || balances[0].FromID != bob || balances[0].ToID != alice || balances[0].Amount != 2.5 {
			t.Errorf("Balances = %+v, want Bob owes Alice 2.50", balances)
		}
	})
}

func TestSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	people := addPeople(t, store, "Alice", "Bob")
	alice, bob := people[0].ID, people[1].ID

	t.Run("CreateSettlement strips time of day", func(t *testing.T) {
		settlement := &models.Settlement{
			From:   bob,
			To:     alice,
			Amount: 20,
			Date:   time.Date(2024, 3, 9, 23, 15, 0, 0, time.UTC),
			Note:   "cash",
		}
		if err := store.CreateSettlement(ctx, settlement); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}

		got, err := store.GetSettlement(ctx, settlement.ID)
		if err != nil {
			t.Fatalf("GetSettlement failed: %v", err)
		}
		want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
		if !got.Date.Equal(want) {
			t.Errorf("Date = %v, want %v", got.Date, want)
		}
		if got.Amount != 20 || got.From != bob || got.To != alice || got.Note != "cash" {
			t.Errorf("Unexpected settlement: %+v", got)
		}
	})

	t.Run("CreateSettlement validates input", func(t *testing.T) {
		err := store.CreateSettlement(ctx, &models.Settlement{From: bob, To: bob, Amount: 5})
		var verr *calculator.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Expected ValidationError, got %v", err)
		}

		err = store.CreateSettlement(ctx, &models.Settlement{From: bob, To: uuid.New(), Amount: 5})
		if !errors.Is(err, storage.ErrUnknownPerson) {
			t.Errorf("Expected ErrUnknownPerson, got %v", err)
		}
	})

	t.Run("CreateSettlement rejects amounts below half a cent", func(t *testing.T) {
		err := store.CreateSettlement(ctx, &models.Settlement{From: alice, To: bob, Amount: 0.004})
		var verr *calculator.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
		if verr.Messages[0] != calculator.MsgSettlementNotPositive {
			t.Errorf("Message = %q, want %q", verr.Messages[0], calculator.MsgSettlementNotPositive)
		}
	})

	t.Run("ListSettlements orders by date then recency", func(t *testing.T) {
		older := &models.Settlement{From: alice, To: bob, Amount: 1, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		sameDay := &models.Settlement{From: alice, To: bob, Amount: 2, Date: time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)}
		for _, s := range []*models.Settlement{older, sameDay} {
			if err := store.CreateSettlement(ctx, s); err != nil {
				t.Fatalf("CreateSettlement failed: %v", err)
			}
		}

		settlements, err := store.ListSettlements(ctx)
		if err != nil {
			t.Fatalf("ListSettlements failed: %v", err)
		}
		if len(settlements) != 3 {
			t.Fatalf("Got %d settlements, want 3", len(settlements))
		}
		if settlements[0].ID != sameDay.ID || settlements[2].ID != older.ID {
			t.Errorf("Unexpected order: %v, %v, %v", settlements[0].Amount, settlements[1].Amount, settlements[2].Amount)
		}
	})

	t.Run("DeleteSettlement", func(t *testing.T) {
		settlements, _ := store.ListSettlements(ctx)
		if err := store.DeleteSettlement(ctx, settlements[0].ID); err != nil {
			t.Fatalf("DeleteSettlement failed: %v", err)
		}
		if _, err := store.GetSettlement(ctx, settlements[0].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteSettlement(ctx, uuid.New()); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("alice@example.com", "Alice", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := store.CreateUser(ctx, models.NewUser("alice@example.com", "Other", "hash")); !errors.Is(err, storage.ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists, got %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil || byEmail == nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("ID = %s, want %s", byEmail.ID, user.ID)
	}

	byID, err := store.GetUserByID(ctx, user.ID)
	if err != nil || byID == nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if byID.DisplayName != "Alice" {
		t.Errorf("DisplayName = %s, want Alice", byID.DisplayName)
	}

	missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil || missing != nil {
		t.Errorf("Expected nil user and nil error, got %v, %v", missing, err)
	}
}

func TestBind(t *testing.T) {
	pg := &Store{dialect: DialectPostgres}
	if got := pg.bind("SELECT 1 WHERE a = ? AND b = ?"); got != "SELECT 1 WHERE a = $1 AND b = $2" {
		t.Errorf("bind = %q", got)
	}

	lite := &Store{dialect: DialectSQLite}
	if got := lite.bind("a = ?"); got != "a = ?" {
		t.Errorf("bind = %q", got)
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	got := DateOnly(time.Date(2024, 3, 10, 5, 0, 0, 0, loc))
	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
	if DateOnly(time.Time{}).IsZero() {
		t.Error("DateOnly(zero) should default to today")
	}
}
