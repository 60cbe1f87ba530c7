// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "testing"

func TestResetCodeSingleUse(t *testing.T) {
	db := testDB(t)
	resets := NewResetCodeStore(db)
	t.Cleanup(func() { cleanResetCodes(t, db, "single-use@example.com") })

	if _, err := resets.Create("single-use@example.com", "123456"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ok, err := resets.Redeem("single-use@example.com", "123456")
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if !ok {
		t.Fatal("fresh code rejected")
	}

	ok, err = resets.Redeem("single-use@example.com", "123456")
	if err != nil {
		t.Fatalf("second Redeem: %v", err)
	}
	if ok {
		t.Error("used code accepted a second time")
	}
}

func TestResetCodeNewCodeInvalidatesPrior(t *testing.T) {
	db := testDB(t)
	resets := NewResetCodeStore(db)
	t.Cleanup(func() { cleanResetCodes(t, db, "rotate@example.com") })

	if _, err := resets.Create("rotate@example.com", "111111"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := resets.Create("rotate@example.com", "222222"); err != nil {
		t.Fatalf("second Create: %v", err)
	}

	ok, err := resets.Redeem("rotate@example.com", "111111")
	if err != nil {
		t.Fatalf("Redeem old: %v", err)
	}
	if ok {
		t.Error("superseded code must be rejected")
	}

	ok, err = resets.Redeem("rotate@example.com", "222222")
	if err != nil {
		t.Fatalf("Redeem new: %v", err)
	}
	if !ok {
		t.Error("latest code rejected")
	}
}

func TestResetCodeWrongCode(t *testing.T) {
	db := testDB(t)
	resets := NewResetCodeStore(db)
	t.Cleanup(func() { cleanResetCodes(t, db, "wrong@example.com") })

	if _, err := resets.Create("wrong@example.com", "654321"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ok, err := resets.Redeem("wrong@example.com", "000000")
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if ok {
		t.Error("wrong code accepted")
	}
}
