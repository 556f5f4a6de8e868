package services

import (
	"context"
	"time"

	"github.com/campushq/discipline/internal/app/models"
	"github.com/campushq/discipline/internal/pkg/apperrors"
)

// In-memory stand-ins for the repository interfaces. They mirror the SQL
// ordering rules (newest-first listings) so the services can be exercised
// without a database.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if u.Identifier == user.Identifier && u.RoleType == user.RoleType {
			return 0, apperrors.ErrDuplicateIdentifier
		}
	}
	f.nextID++
	cp := *user
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	f.users[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetUserByIdentifier(_ context.Context, identifier string, role models.RoleType) (*models.User, error) {
	for _, u := range f.users {
		if u.Identifier == identifier && u.RoleType == role {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeUserStore) IdentifierExists(_ context.Context, identifier string, role models.RoleType) (bool, error) {
	for _, u := range f.users {
		if u.Identifier == identifier && u.RoleType == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID int64, hashedPassword string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	u.Password = hashedPassword
	return nil
}

type fakeProfileStore struct {
	students map[int64]*models.StudentProfile
	teachers map[int64]*models.TeacherProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		students: make(map[int64]*models.StudentProfile),
		teachers: make(map[int64]*models.TeacherProfile),
	}
}

func (f *fakeProfileStore) CreateStudentProfile(_ context.Context, profile *models.StudentProfile) error {
	cp := *profile
	f.students[profile.UserID] = &cp
	return nil
}

func (f *fakeProfileStore) GetStudentProfileByUserID(_ context.Context, userID int64) (*models.StudentProfile, error) {
	p, ok := f.students[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileStore) UpdateStudentProfile(_ context.Context, profile *models.StudentProfile) error {
	if _, ok := f.students[profile.UserID]; !ok {
		return apperrors.ErrNotFound
	}
	cp := *profile
	f.students[profile.UserID] = &cp
	return nil
}

func (f *fakeProfileStore) GetTeacherProfileByUserID(_ context.Context, userID int64) (*models.TeacherProfile, error) {
	p, ok := f.teachers[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

type fakeCaseStore struct {
	cases  []models.Case
	nextID int64
}

func newFakeCaseStore() *fakeCaseStore {
	return &fakeCaseStore{}
}

func (f *fakeCaseStore) CreateCase(_ context.Context, c *models.Case) (int64, error) {
	f.nextID++
	cp := *c
	cp.ID = f.nextID
	cp.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Millisecond)
	f.cases = append(f.cases, cp)
	return cp.ID, nil
}

// newestFirst returns the stored cases in reverse insertion order, matching
// the ORDER BY created_at DESC the real queries use.
func (f *fakeCaseStore) newestFirst() []models.Case {
	out := make([]models.Case, 0, len(f.cases))
	for i := len(f.cases) - 1; i >= 0; i-- {
		out = append(out, f.cases[i])
	}
	return out
}

func (f *fakeCaseStore) ListByUSN(_ context.Context, usn string) ([]models.Case, error) {
	var out []models.Case
	for _, c := range f.newestFirst() {
		if c.USN == usn {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCaseStore) ListByCreator(_ context.Context, teacherID int64, limit uint64) ([]models.Case, error) {
	var out []models.Case
	for _, c := range f.newestFirst() {
		if c.CreatedBy == teacherID {
			out = append(out, c)
			if uint64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCaseStore) CountByUSN(_ context.Context, usn string) (int64, error) {
	var n int64
	for _, c := range f.cases {
		if c.USN == usn {
			n++
		}
	}
	return n, nil
}

func (f *fakeCaseStore) CountByCreator(_ context.Context, teacherID int64) (int64, error) {
	var n int64
	for _, c := range f.cases {
		if c.CreatedBy == teacherID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCaseStore) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(f.cases))
	f.cases = nil
	return n, nil
}

type fakeActivityStore struct {
	records []models.Activity
	nextID  int64
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{}
}

func (f *fakeActivityStore) Record(_ context.Context, userID int64, action, details string) error {
	f.nextID++
	f.records = append(f.records, models.Activity{
		ID:        f.nextID,
		UserID:    userID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeActivityStore) ListRecent(_ context.Context, userID int64, limit uint64) ([]models.Activity, error) {
	var out []models.Activity
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID {
			out = append(out, f.records[i])
			if uint64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeActivityStore) byAction(userID int64, action string) []models.Activity {
	var out []models.Activity
	for _, a := range f.records {
		if a.UserID == userID && a.Action == action {
			out = append(out, a)
		}
	}
	return out
}
