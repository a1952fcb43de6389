package service

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/store"
	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type fakeRecordRepo struct {
	records   map[string]models.CourseRecord
	saveCalls int
	listCalls int
	saveErr   error
	listErr   error
}

func newFakeRecordRepo(records ...models.CourseRecord) *fakeRecordRepo {
	repo := &fakeRecordRepo{records: map[string]models.CourseRecord{}}
	for _, record := range records {
		repo.records[record.ID] = record
	}
	return repo
}

func (f *fakeRecordRepo) List(ctx context.Context) ([]models.CourseRecord, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	records := make([]models.CourseRecord, 0, len(f.records))
	for _, record := range f.records {
		records = append(records, record)
	}
	return records, nil
}

func (f *fakeRecordRepo) ListByStudent(ctx context.Context, studentID string) ([]models.CourseRecord, error) {
	all, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.CourseRecord, 0, len(all))
	for _, record := range all {
		if record.StudentID == studentID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (models.CourseRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return models.CourseRecord{}, apperr.NewNotFound(store.CollectionRecords, id)
	}
	return record, nil
}

func (f *fakeRecordRepo) FindByStudentAndCourse(ctx context.Context, studentID, courseCode string) (models.CourseRecord, bool, error) {
	if f.listErr != nil {
		return models.CourseRecord{}, false, f.listErr
	}
	for _, record := range f.records {
		if record.StudentID == studentID && record.CourseCode == courseCode {
			return record, true, nil
		}
	}
	return models.CourseRecord{}, false, nil
}

func (f *fakeRecordRepo) Save(ctx context.Context, record models.CourseRecord) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeRecordRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return apperr.NewNotFound(store.CollectionRecords, id)
	}
	delete(f.records, id)
	return nil
}

type fakeStudentRepo struct {
	students  map[string]models.Student
	saveCalls int
	saveErr   error
}

func newFakeStudentRepo(students ...models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: map[string]models.Student{}}
	for _, student := range students {
		repo.students[student.ID] = student
	}
	return repo
}

func (f *fakeStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0, len(f.students))
	for _, student := range f.students {
		students = append(students, student)
	}
	return students, nil
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return models.Student{}, apperr.NewNotFound(store.CollectionStudents, id)
	}
	return student, nil
}

func (f *fakeStudentRepo) GetByEmail(ctx context.Context, email string) (models.Student, error) {
	for _, student := range f.students {
		if student.Email == email {
			return student, nil
		}
	}
	return models.Student{}, apperr.NewNotFound(store.CollectionStudents, email)
}

func (f *fakeStudentRepo) Save(ctx context.Context, student models.Student) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.students[id]; !ok {
		return apperr.NewNotFound(store.CollectionStudents, id)
	}
	delete(f.students, id)
	return nil
}

type fakeCourseRepo struct {
	courses map[string]models.Course
}

func newFakeCourseRepo(courses ...models.Course) *fakeCourseRepo {
	repo := &fakeCourseRepo{courses: map[string]models.Course{}}
	for _, course := range courses {
		repo.courses[course.Code] = course
	}
	return repo
}

func (f *fakeCourseRepo) List(ctx context.Context) ([]models.Course, error) {
	courses := make([]models.Course, 0, len(f.courses))
	for _, course := range f.courses {
		courses = append(courses, course)
	}
	return courses, nil
}

func (f *fakeCourseRepo) GetByCode(ctx context.Context, code string) (models.Course, error) {
	course, ok := f.courses[code]
	if !ok {
		return models.Course{}, apperr.NewNotFound(store.CollectionCourses, code)
	}
	return course, nil
}

func (f *fakeCourseRepo) FindByCodeFold(ctx context.Context, code string) (models.Course, bool, error) {
	for _, course := range f.courses {
		if strings.EqualFold(course.Code, code) {
			return course, true, nil
		}
	}
	return models.Course{}, false, nil
}

func (f *fakeCourseRepo) Save(ctx context.Context, course models.Course) error {
	f.courses[course.Code] = course
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, code string) error {
	if _, ok := f.courses[code]; !ok {
		return apperr.NewNotFound(store.CollectionCourses, code)
	}
	delete(f.courses, code)
	return nil
}

type fakeProgramRepo struct {
	programs map[string]models.Program
}

func newFakeProgramRepo(programs ...models.Program) *fakeProgramRepo {
	repo := &fakeProgramRepo{programs: map[string]models.Program{}}
	for _, program := range programs {
		repo.programs[program.Name] = program
	}
	return repo
}

func (f *fakeProgramRepo) List(ctx context.Context) ([]models.Program, error) {
	programs := make([]models.Program, 0, len(f.programs))
	for _, program := range f.programs {
		programs = append(programs, program)
	}
	return programs, nil
}

func (f *fakeProgramRepo) GetByName(ctx context.Context, name string) (models.Program, error) {
	program, ok := f.programs[name]
	if !ok {
		return models.Program{}, apperr.NewNotFound(store.CollectionPrograms, name)
	}
	return program, nil
}

func (f *fakeProgramRepo) FindByNameFold(ctx context.Context, name string) (models.Program, bool, error) {
	for _, program := range f.programs {
		if strings.EqualFold(program.Name, name) {
			return program, true, nil
		}
	}
	return models.Program{}, false, nil
}

func (f *fakeProgramRepo) Save(ctx context.Context, program models.Program) error {
	f.programs[program.Name] = program
	return nil
}

func (f *fakeProgramRepo) Delete(ctx context.Context, name string) error {
	if _, ok := f.programs[name]; !ok {
		return apperr.NewNotFound(store.CollectionPrograms, name)
	}
	delete(f.programs, name)
	return nil
}

