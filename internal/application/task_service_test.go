package application

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jcgarciar/tasks-backend/internal/domain/entity"
	"github.com/jcgarciar/tasks-backend/internal/domain/repository"
	"github.com/jcgarciar/tasks-backend/pkg/apperr"
)

// fakeTaskRepo keeps tasks in memory and mimics the store's task_date
// ordering on reads.
type fakeTaskRepo struct {
	tasks map[string]entity.Task
	err   error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]entity.Task{}}
}

func (r *fakeTaskRepo) sorted(filter func(entity.Task) bool) []entity.Task {
	out := []entity.Task{}
	for _, t := range r.tasks {
		if filter == nil || filter(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskDate < out[j].TaskDate })
	return out
}

func (r *fakeTaskRepo) FindAll(ctx context.Context) ([]entity.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(nil), nil
}

func (r *fakeTaskRepo) FindByUser(ctx context.Context, userID string, completed *bool) ([]entity.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(func(t entity.Task) bool {
		if t.UserID != userID {
			return false
		}
		return completed == nil || t.Completed == *completed
	}), nil
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) Insert(ctx context.Context, t *entity.Task) error {
	if r.err != nil {
		return r.err
	}
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	r.tasks[t.ID.Hex()] = *t
	return nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, id string, data entity.TaskUpdate) error {
	t, ok := r.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Title = data.Title
	t.Description = data.Description
	t.TaskDate = data.TaskDate
	t.Completed = data.Completed
	r.tasks[id] = t
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

func seedTask(t *testing.T, repo *fakeTaskRepo, userID, taskDate string, completed bool) string {
	t.Helper()
	task := &entity.Task{
		UserID:      userID,
		Title:       "titulo de ejemplo",
		Description: "descripcion de ejemplo larga",
		TaskDate:    taskDate,
		Completed:   completed,
		CreatedAt:   time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC),
	}
	if err := repo.Insert(context.Background(), task); err != nil {
		t.Fatalf("seed insert: %v", err)
	}
	return task.ID.Hex()
}

func TestTaskServiceCreateForcesDefaults(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, nil)

	before := time.Now().UTC()
	task, err := svc.Create(context.Background(), "user-1", CreateTaskInput{
		Title:       "1234567890",
		Description: "123456789012345",
		TaskDate:    "2024-01-01 10:00",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if task.Completed {
		t.Error("Create() stored completed=true, want false")
	}
	if task.CreatedAt.Before(before.Add(-time.Second)) {
		t.Errorf("Create() createdAt = %v, want server-stamped now", task.CreatedAt)
	}
	if task.ID.IsZero() {
		t.Error("Create() did not carry back the assigned id")
	}
	if task.UserID != "user-1" {
		t.Errorf("Create() userId = %q, want user-1", task.UserID)
	}
	if _, ok := repo.tasks[task.ID.Hex()]; !ok {
		t.Error("Create() did not persist the task")
	}
}

func TestTaskServiceListAllFormatsCreatedDate(t *testing.T) {
	repo := newFakeTaskRepo()
	seedTask(t, repo, "user-1", "2024-05-02 09:00", false)
	svc := NewTaskService(repo, nil)

	out, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("ListAll() returned %d tasks, want 1", len(out))
	}
	if out[0].CreatedDate != "2024-03-10 08:30:00" {
		t.Errorf("created_date = %q, want 2024-03-10 08:30:00", out[0].CreatedDate)
	}
}

func TestTaskServiceListAllOrdersByTaskDate(t *testing.T) {
	repo := newFakeTaskRepo()
	seedTask(t, repo, "user-1", "2024-05-03 09:00", false)
	seedTask(t, repo, "user-1", "2024-05-01 09:00", false)
	seedTask(t, repo, "user-1", "2024-05-02 09:00", false)
	svc := NewTaskService(repo, nil)

	out, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	dates := []string{}
	for _, task := range out {
		dates = append(dates, task.TaskDate)
	}
	if !sort.StringsAreSorted(dates) {
		t.Errorf("tasks not ordered by task_date ascending: %v", dates)
	}
}

func TestTaskServiceListByUserCompletedFilter(t *testing.T) {
	repo := newFakeTaskRepo()
	seedTask(t, repo, "user-1", "2024-05-01 09:00", false)
	seedTask(t, repo, "user-1", "2024-05-02 09:00", true)
	seedTask(t, repo, "user-2", "2024-05-03 09:00", true)
	svc := NewTaskService(repo, nil)
	ctx := context.Background()

	all, err := svc.ListByUser(ctx, "user-1", nil)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered list has %d tasks, want 2", len(all))
	}

	truthy := true
	completed, err := svc.ListByUser(ctx, "user-1", &truthy)
	if err != nil {
		t.Fatalf("ListByUser(completed) error = %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("completed list has %d tasks, want 1", len(completed))
	}
	for _, task := range completed {
		if !task.Completed {
			t.Errorf("filtered result has completed=false: %+v", task)
		}
		found := false
		for _, a := range all {
			if a.ID == task.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("filtered result %s is not a subset of the unfiltered list", task.ID)
		}
	}
}

func TestTaskServiceUpdate(t *testing.T) {
	repo := newFakeTaskRepo()
	id := seedTask(t, repo, "user-1", "2024-05-01 09:00", false)
	svc := NewTaskService(repo, nil)

	in := entity.TaskUpdate{
		Title:       "nuevo titulo",
		Description: "nueva descripcion",
		TaskDate:    "2024-06-01 12:00",
		Completed:   true,
	}
	out, err := svc.Update(context.Background(), id, in)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if *out != in {
		t.Errorf("Update() = %+v, want the input echoed back", *out)
	}

	stored := repo.tasks[id]
	if stored.Title != in.Title || stored.Description != in.Description ||
		stored.TaskDate != in.TaskDate || stored.Completed != in.Completed {
		t.Errorf("stored task %+v, want all four fields overwritten", stored)
	}
}

func TestTaskServiceUpdateMissing(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), nil)

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), entity.TaskUpdate{})
	ae, ok := apperr.From(err)
	if !ok {
		t.Fatalf("Update() error = %v, want application error", err)
	}
	if ae.Message != "No existe tarea" || ae.StatusCode != 400 {
		t.Errorf("Update() error = %q (%d), want No existe tarea (400)", ae.Message, ae.StatusCode)
	}
}

func TestTaskServiceUpdateLastWriteWins(t *testing.T) {
	repo := newFakeTaskRepo()
	id := seedTask(t, repo, "user-1", "2024-05-01 09:00", false)
	svc := NewTaskService(repo, nil)
	ctx := context.Background()

	first := entity.TaskUpdate{Title: "primera escritura", Description: "d", TaskDate: "2024-06-01 10:00"}
	second := entity.TaskUpdate{Title: "segunda escritura", Description: "d", TaskDate: "2024-06-01 11:00"}
	if _, err := svc.Update(ctx, id, first); err != nil {
		t.Fatalf("first Update() error = %v", err)
	}
	if _, err := svc.Update(ctx, id, second); err != nil {
		t.Fatalf("second Update() error = %v", err)
	}

	if got := repo.tasks[id].Title; got != "segunda escritura" {
		t.Errorf("stored title = %q, want the last write to win", got)
	}
}

func TestTaskServiceDelete(t *testing.T) {
	repo := newFakeTaskRepo()
	id := seedTask(t, repo, "user-1", "2024-05-01 09:00", false)
	svc := NewTaskService(repo, nil)

	ok, err := svc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !ok {
		t.Error("Delete() = false, want true")
	}
	if _, exists := repo.tasks[id]; exists {
		t.Error("task still persisted after delete")
	}
}

func TestTaskServiceDeleteCompletedIsRejected(t *testing.T) {
	repo := newFakeTaskRepo()
	id := seedTask(t, repo, "user-1", "2024-05-01 09:00", true)
	svc := NewTaskService(repo, nil)

	_, err := svc.Delete(context.Background(), id)
	ae, ok := apperr.From(err)
	if !ok {
		t.Fatalf("Delete() error = %v, want application error", err)
	}
	if ae.Message != "No se puede eliminar tarea, tarea ya ha sido completada" {
		t.Errorf("Delete() message = %q", ae.Message)
	}
	if _, exists := repo.tasks[id]; !exists {
		t.Error("completed task was removed, want it kept")
	}
}

func TestTaskServiceDeleteMissing(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), nil)

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	ae, ok := apperr.From(err)
	if !ok {
		t.Fatalf("Delete() error = %v, want application error", err)
	}
	if ae.Message != "No existe tarea" {
		t.Errorf("Delete() message = %q, want No existe tarea", ae.Message)
	}
}

func TestTaskServiceStoreErrorsPropagate(t *testing.T) {
	repo := newFakeTaskRepo()
	repo.err = errors.New("connection reset")
	svc := NewTaskService(repo, nil)

	if _, err := svc.ListAll(context.Background()); err == nil {
		t.Error("ListAll() swallowed a store error")
	} else if _, isApp := apperr.From(err); isApp {
		t.Error("store error surfaced as application error, want unexpected failure")
	}
}
