package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oapi-codegen/nullable"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toodoo/backend/internal/model"
)

const testResultsPerQuery = 50

func newTodoRepoMock(t *testing.T) (*TodoRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewTodoRepository(mock, testResultsPerQuery), mock
}

var todoRowColumns = []string{"id", "title", "description", "deadline", "priority", "reminder", "tags", "creator", "status"}

func addTodoRow(rows *pgxmock.Rows, t *model.Todo) *pgxmock.Rows {
	return rows.AddRow(t.ID, t.Title, t.Description, t.Deadline.Time, t.Priority,
		t.Reminder, t.Tags, t.Creator, t.Status)
}

func TestTodoRepositoryCreate(t *testing.T) {
	insertTodo := regexp.QuoteMeta(`INSERT INTO todos (title, description, deadline, priority, reminder, tags, creator, status)`)
	insertRelation := regexp.QuoteMeta(`INSERT INTO user_todo_relation (user_id, todo_id) VALUES ($1, $2)`)

	deadline := model.NewDate(2026, time.June, 1)

	t.Run("writes the todo and its relation in one transaction", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertTodo).
			WithArgs("write report", (*string)(nil), deadline, model.PriorityHigh,
				(*time.Time)(nil), []string{"work"}, int64(1), model.StatusReady).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
		mock.ExpectExec(insertRelation).
			WithArgs(int64(1), int64(10)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		todo, err := repo.Create(context.Background(), model.NewTodo{
			Title:    "write report",
			Deadline: deadline,
			Priority: model.PriorityHigh,
			Tags:     []string{"work"},
			Creator:  1,
			Status:   model.StatusReady,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(10), todo.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies priority and status defaults", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertTodo).
			WithArgs("quick task", (*string)(nil), deadline, model.DefaultPriority,
				(*time.Time)(nil), []string(nil), int64(1), model.DefaultStatus).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectExec(insertRelation).
			WithArgs(int64(1), int64(11)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		todo, err := repo.Create(context.Background(), model.NewTodo{
			Title:    "quick task",
			Deadline: deadline,
			Creator:  1,
		})
		require.NoError(t, err)
		assert.Equal(t, model.PriorityMedium, todo.Priority)
		assert.Equal(t, model.StatusReady, todo.Status)
	})

	t.Run("unknown creator rolls back as user not found", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertTodo).
			WithArgs("orphan", (*string)(nil), deadline, model.DefaultPriority,
				(*time.Time)(nil), []string(nil), int64(404), model.DefaultStatus).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "todos_creator_fkey"})
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), model.NewTodo{
			Title:    "orphan",
			Deadline: deadline,
			Creator:  404,
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("relation failure rolls back the todo insert", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertTodo).
			WithArgs("doomed", (*string)(nil), deadline, model.DefaultPriority,
				(*time.Time)(nil), []string(nil), int64(1), model.DefaultStatus).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))
		mock.ExpectExec(insertRelation).
			WithArgs(int64(1), int64(12)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), model.NewTodo{
			Title:    "doomed",
			Deadline: deadline,
			Creator:  1,
		})
		assert.ErrorIs(t, err, ErrRelationsStore)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure is a todos store error", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(context.Background(), model.NewTodo{
			Title:    "stillborn",
			Deadline: deadline,
			Creator:  1,
		})
		assert.ErrorIs(t, err, ErrTodosStore)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTodoRepositoryGet(t *testing.T) {
	selectSQL := regexp.QuoteMeta(`SELECT id, title, description, deadline, priority, reminder, tags, creator, status FROM todos WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		want := &model.Todo{
			ID:       10,
			Title:    "write report",
			Deadline: model.NewDate(2026, time.June, 1),
			Priority: model.PriorityHigh,
			Tags:     []string{"work"},
			Creator:  1,
			Status:   model.StatusInProgress,
		}

		mock.ExpectQuery(selectSQL).
			WithArgs(int64(10)).
			WillReturnRows(addTodoRow(pgxmock.NewRows(todoRowColumns), want))

		todo, err := repo.Get(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, want, todo)
	})

	t.Run("absence is a typed failure", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectQuery(selectSQL).
			WithArgs(int64(404)).
			WillReturnRows(pgxmock.NewRows(todoRowColumns))

		todo, err := repo.Get(context.Background(), 404)
		assert.Nil(t, todo)
		assert.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoRepositoryByTag(t *testing.T) {
	searchSQL := regexp.QuoteMeta(`SELECT id, title, description, deadline, priority, reminder, tags, creator, status FROM todos WHERE $1 = ANY(tags) ORDER BY id LIMIT $2`)

	t.Run("returns matches capped at the query limit", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		first := &model.Todo{ID: 1, Title: "a", Deadline: model.NewDate(2026, time.June, 1),
			Priority: model.PriorityLow, Tags: []string{"work"}, Creator: 1, Status: model.StatusReady}
		second := &model.Todo{ID: 2, Title: "b", Deadline: model.NewDate(2026, time.June, 2),
			Priority: model.PriorityHigh, Tags: []string{"work", "urgent"}, Creator: 2, Status: model.StatusDone}

		rows := pgxmock.NewRows(todoRowColumns)
		addTodoRow(rows, first)
		addTodoRow(rows, second)

		mock.ExpectQuery(searchSQL).
			WithArgs("work", testResultsPerQuery).
			WillReturnRows(rows)

		todos, err := repo.ByTag(context.Background(), "work")
		require.NoError(t, err)
		assert.Equal(t, []*model.Todo{first, second}, todos)
	})

	t.Run("no matches is a typed failure", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectQuery(searchSQL).
			WithArgs("ghost", testResultsPerQuery).
			WillReturnRows(pgxmock.NewRows(todoRowColumns))

		todos, err := repo.ByTag(context.Background(), "ghost")
		assert.Nil(t, todos)
		assert.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoRepositoryByUser(t *testing.T) {
	searchSQL := regexp.QuoteMeta(`JOIN user_todo_relation r ON r.todo_id = t.id`)

	t.Run("returns the user's todos", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		want := &model.Todo{ID: 4, Title: "mine", Deadline: model.NewDate(2026, time.July, 1),
			Priority: model.PriorityMedium, Creator: 9, Status: model.StatusPaused}

		mock.ExpectQuery(searchSQL).
			WithArgs(int64(9), testResultsPerQuery).
			WillReturnRows(addTodoRow(pgxmock.NewRows(todoRowColumns), want))

		todos, err := repo.ByUser(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, []*model.Todo{want}, todos)
	})

	t.Run("no todos is a typed failure", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectQuery(searchSQL).
			WithArgs(int64(9), testResultsPerQuery).
			WillReturnRows(pgxmock.NewRows(todoRowColumns))

		_, err := repo.ByUser(context.Background(), 9)
		assert.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoRepositoryUpdate(t *testing.T) {
	t.Run("applies only specified fields", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		// squirrel's SetMap sorts columns alphabetically.
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE todos SET priority = $1, status = $2, title = $3 WHERE id = $4`)).
			WithArgs(model.PriorityHigh, model.StatusBlocked, "renamed", int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(context.Background(), model.TodoChanges{
			ID:       10,
			Title:    nullable.NewNullableWithValue("renamed"),
			Priority: nullable.NewNullableWithValue(model.PriorityHigh),
			Status:   nullable.NewNullableWithValue(model.StatusBlocked),
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty change-set is not found without touching the store", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		err := repo.Update(context.Background(), model.TodoChanges{ID: 10})
		assert.ErrorIs(t, err, ErrTodoNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero affected rows is not found", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE todos SET title = $1 WHERE id = $2`)).
			WithArgs("renamed", int64(404)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), model.TodoChanges{
			ID:    404,
			Title: nullable.NewNullableWithValue("renamed"),
		})
		assert.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoRepositoryDelete(t *testing.T) {
	deleteRelation := regexp.QuoteMeta(`DELETE FROM user_todo_relation WHERE todo_id = $1`)
	deleteTodo := regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1`)

	t.Run("removes the relation row, then the todo", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(deleteRelation).WithArgs(int64(10)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec(deleteTodo).WithArgs(int64(10)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), 10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing relation row already proves absence", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(deleteRelation).WithArgs(int64(404)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), 404)
		assert.ErrorIs(t, err, ErrTodoNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("relation delete failure rolls back", func(t *testing.T) {
		repo, mock := newTodoRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(deleteRelation).WithArgs(int64(10)).WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), 10)
		assert.ErrorIs(t, err, ErrRelationsStore)
	})
}
