package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
)

func TestChirpRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.Chirps()
	ctx := context.Background()

	author := createTestUser(t, db, "author")

	chirp := &domain.Chirp{AuthorID: author.ID, Message: "Hello World"}
	if err := repo.Create(ctx, chirp, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if chirp.ID == 0 {
		t.Fatal("expected chirp ID to be set after create")
	}
	if chirp.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	if len(chirp.MentionedUserIDs) != 0 {
		t.Fatalf("expected no mentions, got %v", chirp.MentionedUserIDs)
	}
}

func TestChirpRepository_Create_MentionExistingUser(t *testing.T) {
	db := newTestDB(t)
	repo := db.Chirps()
	ctx := context.Background()

	nate := createTestUser(t, db, "natec425")
	bob := createTestUser(t, db, "bob")

	chirp := &domain.Chirp{AuthorID: nate.ID, Message: "Hello @bob"}
	if err := repo.Create(ctx, chirp, []string{"bob"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mentions, err := repo.MentionedUserIDs(ctx, chirp.ID)
	if err != nil {
		t.Fatalf("MentionedUserIDs: %v", err)
	}
	if len(mentions) != 1 || mentions[0] != bob.ID {
		t.Fatalf("expected mention edge to bob (%d), got %v", bob.ID, mentions)
	}
}

func TestChirpRepository_Create_UnknownMentionDropped(t *testing.T) {
	db := newTestDB(t)
	repo := db.Chirps()
	ctx := context.Background()

	nate := createTestUser(t, db, "natec425")

	chirp := &domain.Chirp{AuthorID: nate.ID, Message: "Hello @bob"}
	if err := repo.Create(ctx, chirp, []string{"bob"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mentions, err := repo.MentionedUserIDs(ctx, chirp.ID)
	if err != nil {
		t.Fatalf("MentionedUserIDs: %v", err)
	}
	if len(mentions) != 0 {
		t.Fatalf("expected no mention edges, got %v", mentions)
	}

	// A user signing up afterward must not be linked retroactively.
	bob := createTestUser(t, db, "bob")
	feed, err := repo.FeedFor(ctx, bob.ID)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("expected empty feed for late-signup bob, got %d chirps", len(feed))
	}
}

func TestChirpRepository_Create_DuplicateMentionsCollapse(t *testing.T) {
	db := newTestDB(t)
	repo := db.Chirps()
	ctx := context.Background()

	nate := createTestUser(t, db, "natec425")
	bob := createTestUser(t, db, "bob")

	chirp := &domain.Chirp{AuthorID: nate.ID, Message: "@bob @bob @bob"}
	if err := repo.Create(ctx, chirp, []string{"bob", "bob", "bob"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mentions, err := repo.MentionedUserIDs(ctx, chirp.ID)
	if err != nil {
		t.Fatalf("MentionedUserIDs: %v", err)
	}
	if len(mentions) != 1 || mentions[0] != bob.ID {
		t.Fatalf("expected single mention edge for bob, got %v", mentions)
	}
}

func TestChirpRepository_FeedFor_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := db.Chirps()
	ctx := context.Background()

	author := createTestUser(t, db, "chronological")

	messages := []string{"first", "second", "third"}
	for _, m := range messages {
		chirp := &domain.Chirp{AuthorID: author.ID, Message: m}
		if err := repo.Create(ctx, chirp, nil); err != nil {
			t.Fatalf("Create %q: %v", m, err)
		}
	}

	feed, err := repo.FeedFor(ctx, author.ID)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("expected 3 chirps, got %d", len(feed))
	}

	want := []string{"third", "second", "first"}
	for i, m := range want {
		if feed[i].Message != m {
			t.Fatalf("position %d: expected %q, got %q", i, m, feed[i].Message)
		}
	}
}

func TestChirpRepository_FeedFor_EqualTimestampsNewestInsertFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "tied")

	// Insert directly so both chirps share the exact same timestamp;
	// ordering must then fall back to insertion order, newest first.
	at := time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC)
	for _, m := range []string{"older insert", "newer insert"} {
		_, err := db.SqlDB.ExecContext(ctx,
			`INSERT INTO chirps (author_id, message, created_at) VALUES (?, ?, ?)`,
			author.ID, m, at,
		)
		if err != nil {
			t.Fatalf("insert %q: %v", m, err)
		}
	}

	feed, err := db.Chirps().FeedFor(ctx, author.ID)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 chirps, got %d", len(feed))
	}
	if !feed[0].CreatedAt.Equal(feed[1].CreatedAt) {
		t.Fatalf("expected identical timestamps, got %v and %v", feed[0].CreatedAt, feed[1].CreatedAt)
	}
	if feed[0].Message != "newer insert" || feed[1].Message != "older insert" {
		t.Fatalf("expected tie to break by insertion order, got %q then %q", feed[0].Message, feed[1].Message)
	}
}

func TestChirpRepository_FeedFor_UnionAuthoredAndMentioned(t *testing.T) {
	db := newTestDB(t)
	repo := db.Chirps()
	ctx := context.Background()

	nate := createTestUser(t, db, "natec425")
	bob := createTestUser(t, db, "bob")

	own := &domain.Chirp{AuthorID: bob.ID, Message: "my own chirp"}
	if err := repo.Create(ctx, own, nil); err != nil {
		t.Fatalf("Create own: %v", err)
	}

	mentioning := &domain.Chirp{AuthorID: nate.ID, Message: "Hey @bob"}
	if err := repo.Create(ctx, mentioning, []string{"bob"}); err != nil {
		t.Fatalf("Create mentioning: %v", err)
	}

	feed, err := repo.FeedFor(ctx, bob.ID)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 chirps in bob's feed, got %d", len(feed))
	}
	if feed[0].ID != mentioning.ID || feed[1].ID != own.ID {
		t.Fatalf("unexpected feed order: %v, %v", feed[0], feed[1])
	}

	// Nate's feed contains only his own chirp.
	nateFeed, err := repo.FeedFor(ctx, nate.ID)
	if err != nil {
		t.Fatalf("FeedFor nate: %v", err)
	}
	if len(nateFeed) != 1 || nateFeed[0].ID != mentioning.ID {
		t.Fatalf("unexpected nate feed: %v", nateFeed)
	}
}

func TestChirpRepository_FeedFor_SelfMentionAppearsOnce(t *testing.T) {
	db := newTestDB(t)
	repo := db.Chirps()
	ctx := context.Background()

	nate := createTestUser(t, db, "natec425")

	chirp := &domain.Chirp{AuthorID: nate.ID, Message: "talking to @natec425"}
	if err := repo.Create(ctx, chirp, []string{"natec425"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	feed, err := repo.FeedFor(ctx, nate.ID)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected chirp to appear once, got %d entries", len(feed))
	}
}

func TestChirpRepository_CountByAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := db.Chirps()
	ctx := context.Background()

	author := createTestUser(t, db, "counter")

	count, err := repo.CountByAuthor(ctx, author.ID)
	if err != nil {
		t.Fatalf("CountByAuthor: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 chirps, got %d", count)
	}

	chirp := &domain.Chirp{AuthorID: author.ID, Message: "one"}
	if err := repo.Create(ctx, chirp, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	count, err = repo.CountByAuthor(ctx, author.ID)
	if err != nil {
		t.Fatalf("CountByAuthor: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 chirp, got %d", count)
	}
}
