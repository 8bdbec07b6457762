package services

import (
	"testing"
	"time"

	"finch/internal/models"
	"finch/internal/pagination"
	"finch/internal/testutil"
)

func TestCreateDebt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		due := time.Now().AddDate(0, 1, 0)
		debt, err := svc.CreateDebt(user.ID, "Car loan", 1200000, 35000, 0, 30000, 5000, due)
		testutil.AssertNoError(t, err)

		if debt.ID == 0 {
			t.Fatal("expected non-zero debt ID")
		}
		if debt.Name != "Car loan" {
			t.Errorf("expected name 'Car loan', got %s", debt.Name)
		}
		if debt.Amount != 1200000 {
			t.Errorf("expected amount 1200000, got %d", debt.Amount)
		}
		if debt.InterestRepayment != 5000 {
			t.Errorf("expected interest repayment 5000, got %d", debt.InterestRepayment)
		}
	})
}

func TestGetUserDebts(t *testing.T) {
	t.Run("returns_user_debts_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestDebt(t, db, user1.ID, 10000, 100, 50, 50)
		testutil.CreateTestDebt(t, db, user1.ID, 20000, 200, 50, 50)
		testutil.CreateTestDebt(t, db, user2.ID, 30000, 300, 50, 50)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserDebts(user1.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 debts, got %d", result.TotalItems)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestDebt(t, db, user.ID, 10000, 100, 50, 50)
		}

		page := pagination.PageRequest{Page: 1, PageSize: 2}
		result, err := svc.GetUserDebts(user.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", result.TotalItems)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page, got %d", len(result.Data))
		}
	})
}

func TestGetDebtByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user.ID, 10000, 100, 50, 50)

		found, err := svc.GetDebtByID(user.ID, debt.ID)
		testutil.AssertNoError(t, err)

		if found.ID != debt.ID {
			t.Errorf("expected debt ID %d, got %d", debt.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetDebtByID(user.ID, 9999)
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user1.ID, 10000, 100, 50, 50)

		_, err := svc.GetDebtByID(user2.ID, debt.ID)
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})
}

func TestUpdateDebt(t *testing.T) {
	t.Run("update_decomposition", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user.ID, 10000, 100, 50, 50)

		capital := int64(80)
		interest := int64(20)
		_, err := svc.UpdateDebt(user.ID, debt.ID, "", nil, nil, &capital, &interest, nil)
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetDebtByID(user.ID, debt.ID)
		testutil.AssertNoError(t, err)
		if fetched.CapitalRepayment != 80 || fetched.InterestRepayment != 20 {
			t.Errorf("expected decomposition 80/20, got %d/%d", fetched.CapitalRepayment, fetched.InterestRepayment)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateDebt(user.ID, 9999, "Nope", nil, nil, nil, nil, nil)
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})
}

func TestDeleteDebt(t *testing.T) {
	t.Run("soft_deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user.ID, 10000, 100, 50, 50)

		err := svc.DeleteDebt(user.ID, debt.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetDebtByID(user.ID, debt.ID)
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")

		// Record stays in storage with deleted_at set.
		var count int64
		db.Unscoped().Model(&models.Debt{}).Where("id = ?", debt.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected soft-deleted record to exist, count=%d", count)
		}
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user1.ID, 10000, 100, 50, 50)

		err := svc.DeleteDebt(user2.ID, debt.ID)
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})
}
