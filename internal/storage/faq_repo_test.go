package storage

import (
	"context"
	"testing"
)

func TestNewFAQRepo(t *testing.T) {
	repo := NewFAQRepo(newTestDB(t))
	if repo == nil {
		t.Fatal("NewFAQRepo() returned nil")
	}
}

func TestFAQRepo_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewFAQRepo(newTestDB(t))

	first := []FAQRecord{
		{Question: "How much protein do I need per day?", Answer: "About 0.8 g/kg."},
		{Question: "Is coffee okay?", Answer: "In moderation.\n\nNot medical advice."},
	}
	if err := repo.ReplaceAll(ctx, first); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	got, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListAll() len = %d, want 2", len(got))
	}
	for i, rec := range got {
		if rec.Position != i {
			t.Errorf("record %d position = %d, want %d", i, rec.Position, i)
		}
		if rec.ID == "" {
			t.Errorf("record %d has empty ID", i)
		}
		if rec.Question != first[i].Question || rec.Answer != first[i].Answer {
			t.Errorf("record %d = %+v, want %+v", i, rec, first[i])
		}
	}

	// second replace drops the previous corpus entirely
	second := []FAQRecord{{ID: "fixed-id", Question: "Which foods are high in fiber?", Answer: "Oats."}}
	if err := repo.ReplaceAll(ctx, second); err != nil {
		t.Fatalf("ReplaceAll() second error = %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}

	got, err = repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() second error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "fixed-id" || got[0].Position != 0 {
		t.Errorf("ListAll() after second replace = %+v, want fixed-id at position 0", got)
	}
}

func TestFAQRepo_ReplaceAllRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := NewFAQRepo(newTestDB(t))

	if err := repo.ReplaceAll(ctx, []FAQRecord{{Question: "q", Answer: "a"}}); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	// duplicate IDs violate the primary key mid-transaction
	bad := []FAQRecord{
		{ID: "dup", Question: "q1", Answer: "a1"},
		{ID: "dup", Question: "q2", Answer: "a2"},
	}
	if err := repo.ReplaceAll(ctx, bad); err == nil {
		t.Fatal("ReplaceAll() with duplicate IDs should fail")
	}

	got, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(got) != 1 || got[0].Question != "q" {
		t.Errorf("ListAll() after failed replace = %+v, want original corpus", got)
	}
}

func TestFAQRepo_ListAllEmpty(t *testing.T) {
	repo := NewFAQRepo(newTestDB(t))

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ListAll() = %#v, want empty slice", got)
	}
}
