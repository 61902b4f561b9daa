package querybuilder

import "testing"

func TestSelectBuilder_WithJoins(t *testing.T) {
	query, args, err := Select("s.score_id", "p.name").
		From("scores s").
		LeftJoin("rounds r", "r.round_id = s.round_id").
		LeftJoin("players p", "p.player_id = s.player_id").
		Where(Eq("s.round_id", int64(4))).
		OrderBy("r.round_date", "s.score_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT s.score_id, p.name FROM scores s LEFT JOIN rounds r ON r.round_id = s.round_id LEFT JOIN players p ON p.player_id = s.player_id WHERE s.round_id = $1 ORDER BY r.round_date, s.score_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresColumnsAndTable(t *testing.T) {
	if _, _, err := Select().From("players").ToSQL(); err == nil {
		t.Fatalf("expected error for select without columns")
	}
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error for select without table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("courses").
		Columns("name").
		Values("Royal Troon").
		Values("Carnoustie").
		Suffix("RETURNING course_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO courses (name) VALUES ($1), ($2) RETURNING course_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Royal Troon" || args[1] != "Carnoustie" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type row struct {
		RoundID  int64 `db:"round_id"`
		PlayerID int64 `db:"player_id"`
		internal string
		Skipped  string `db:"-"`
	}

	query, args, err := InsertModels("scores", []row{{RoundID: 1, PlayerID: 2}, {RoundID: 1, PlayerID: 3}}, "")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}
	wantQuery := "INSERT INTO scores (round_id, player_id) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("scores").
		Set("score", 78).
		Set("hat", true).
		Where(Eq("round_id", int64(4)), Eq("player_id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE scores SET score = $1, hat = $2 WHERE round_id = $3 AND player_id = $4"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_SetExprAndSuffix(t *testing.T) {
	query, args, err := Update("scores").
		Set("birdies", 2).
		SetExpr("updated_at", "NOW()").
		Where(Eq("round_id", int64(4)), Eq("player_id", int64(9))).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE scores SET birdies = $1, updated_at = NOW() WHERE round_id = $2 AND player_id = $3 RETURNING *"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 2 || args[2] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateAndDeleteRequireWhere(t *testing.T) {
	if _, _, err := Update("players").Set("name", "x").ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
	if _, _, err := DeleteFrom("players").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("courses").Where(Eq("course_id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM courses WHERE course_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("scores").Columns("round_id", "player_id").Values(int64(1)).ToSQL()
	if err == nil {
		t.Fatalf("expected error for short insert row")
	}
}
