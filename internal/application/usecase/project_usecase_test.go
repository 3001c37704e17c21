package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
)

// --- fakes ---

type fakeProjectRepo struct {
	projects map[string]*entity.Project
	tasks    map[string]*entity.Task
	logs     []*entity.DailyLog
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: map[string]*entity.Project{},
		tasks:    map[string]*entity.Task{},
	}
}

func (r *fakeProjectRepo) Create(p *entity.Project) error {
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) Update(p *entity.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if p.CompanyID != companyID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProjectRepo) Delete(id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) CreateTask(t *entity.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) GetTaskByID(id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeProjectRepo) UpdateTask(t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) ListTasks(projectID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) DeleteTask(id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeProjectRepo) CreateDailyLog(l *entity.DailyLog) error {
	cp := *l
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeProjectRepo) ListDailyLogs(projectID string, limit, offset int) ([]*entity.DailyLog, error) {
	var out []*entity.DailyLog
	for _, l := range r.logs {
		if l.ProjectID == projectID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	entries []*entity.ActivityEntry
}

func (r *fakeActivityRepo) Create(e *entity.ActivityEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeActivityRepo) ListByCompany(companyID, activityType string, limit, offset int) ([]*entity.ActivityEntry, error) {
	return r.entries, nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) Create(u *entity.User) error                            { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)                { return nil, nil }
func (r *fakeUserRepo) GetByEmailAndCompany(e, c string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) FindByEmail(e string) (*entity.User, error)             { return nil, nil }

// --- helpers ---

const (
	testCompanyID  = "company-1"
	otherCompanyID = "company-2"
	testUserID     = "user-1"
)

type projectFixture struct {
	repo *fakeProjectRepo
	uc   *ProjectUseCase
}

func newProjectFixture() *projectFixture {
	repo := newFakeProjectRepo()
	activity := NewActivityUseCase(&fakeActivityRepo{}, &fakeUserRepo{})
	return &projectFixture{repo: repo, uc: NewProjectUseCase(repo, activity)}
}

func (f *projectFixture) seedProject(id, companyID, status string) {
	f.repo.projects[id] = &entity.Project{
		ID:        id,
		CompanyID: companyID,
		Name:      "Torre Norte",
		Status:    status,
		Budget:    decimal.NewFromInt(1000),
		Spent:     decimal.Zero,
	}
}

func (f *projectFixture) seedTask(id, projectID string) {
	f.repo.tasks[id] = &entity.Task{
		ID:        id,
		ProjectID: projectID,
		Name:      "Cimentación",
		Status:    entity.TaskStatusPending,
	}
}

func strPtr(s string) *string { return &s }

// --- tests ---

func TestProjectUpdateOtherCompanyNotVisible(t *testing.T) {
	f := newProjectFixture()
	f.seedProject("proj-a", testCompanyID, entity.ProjectStatusPlanning)

	out, err := f.uc.Update(otherCompanyID, "proj-a", testUserID,
		dto.UpdateProjectRequest{Name: strPtr("Renombrado")})
	require.NoError(t, err)
	assert.Nil(t, out)

	stored, _ := f.repo.GetByID("proj-a")
	assert.Equal(t, "Torre Norte", stored.Name, "el proyecto de otra empresa no debe cambiar")
}

func TestProjectGetByIDOtherCompanyNotVisible(t *testing.T) {
	f := newProjectFixture()
	f.seedProject("proj-a", testCompanyID, entity.ProjectStatusPlanning)

	out, err := f.uc.GetByID(otherCompanyID, "proj-a")
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = f.uc.GetByID(testCompanyID, "proj-a")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Torre Norte", out.Name)
}

func TestProjectDeleteOtherCompanyNotFound(t *testing.T) {
	f := newProjectFixture()
	f.seedProject("proj-a", testCompanyID, entity.ProjectStatusPlanning)

	err := f.uc.Delete(otherCompanyID, "proj-a", testUserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, _ := f.repo.GetByID("proj-a")
	assert.NotNil(t, stored, "el proyecto debe seguir existiendo")
}

func TestProjectChangeStatusOtherCompanyNotVisible(t *testing.T) {
	f := newProjectFixture()
	f.seedProject("proj-a", testCompanyID, entity.ProjectStatusPlanning)

	out, err := f.uc.ChangeStatus(otherCompanyID, "proj-a", testUserID, entity.ProjectStatusInProgress)
	require.NoError(t, err)
	assert.Nil(t, out)

	stored, _ := f.repo.GetByID("proj-a")
	assert.Equal(t, entity.ProjectStatusPlanning, stored.Status)
}

func TestProjectDeleteInProgressConflict(t *testing.T) {
	f := newProjectFixture()
	f.seedProject("proj-a", testCompanyID, entity.ProjectStatusInProgress)

	err := f.uc.Delete(testCompanyID, "proj-a", testUserID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProjectTasksScopedByCompany(t *testing.T) {
	f := newProjectFixture()
	f.seedProject("proj-a", testCompanyID, entity.ProjectStatusPlanning)
	f.seedTask("task-1", "proj-a")

	_, err := f.uc.ListTasks(otherCompanyID, "proj-a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := f.uc.UpdateTask(otherCompanyID, "task-1", dto.UpdateTaskRequest{Name: strPtr("Otra")})
	require.NoError(t, err)
	assert.Nil(t, out)

	err = f.uc.DeleteTask(otherCompanyID, "task-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, _ := f.repo.GetTaskByID("task-1")
	require.NotNil(t, stored)
	assert.Equal(t, "Cimentación", stored.Name)
}

func TestProjectDailyLogsScopedByCompany(t *testing.T) {
	f := newProjectFixture()
	f.seedProject("proj-a", testCompanyID, entity.ProjectStatusPlanning)

	_, err := f.uc.CreateDailyLog(otherCompanyID, "proj-a", testUserID, dto.CreateDailyLogRequest{Notes: "avance"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.ListDailyLogs(otherCompanyID, "proj-a", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
