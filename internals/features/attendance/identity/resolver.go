// file: internals/features/attendance/identity/resolver.go
package identity

import (
	"context"
	"errors"

	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	studentModel "gymku_backend/internals/features/academy/students/model"
)

var ErrIdentityNotFound = errors.New("CI no encontrado. Verifica tu cédula de identidad")

type Kind string

const (
	KindStudent    Kind = "student"
	KindInstructor Kind = "instructor"
)

// Person is the tagged result of a CI lookup: exactly one of Student or
// Instructor is set, according to Kind.
type Person struct {
	Kind       Kind
	Student    *studentModel.StudentModel
	Instructor *instructorModel.InstructorModel
}

// FullName of whichever record resolved.
func (p Person) FullName() string {
	switch p.Kind {
	case KindStudent:
		return p.Student.FullName()
	case KindInstructor:
		return p.Instructor.FullName()
	}
	return ""
}

// Directories return (nil, nil) when the CI has no match.
type StudentDirectory interface {
	FindByCI(ctx context.Context, ci string) (*studentModel.StudentModel, error)
}

type InstructorDirectory interface {
	FindByCI(ctx context.Context, ci string) (*instructorModel.InstructorModel, error)
}

// Resolver decides whether a CI belongs to a student or an instructor.
// A CI present in both registries resolves to the student; precedence is
// deliberate and matches the check-in flows' behavior.
type Resolver struct {
	Students    StudentDirectory
	Instructors InstructorDirectory
}

func NewResolver(students StudentDirectory, instructors InstructorDirectory) *Resolver {
	return &Resolver{Students: students, Instructors: instructors}
}

func (r *Resolver) Resolve(ctx context.Context, ci string) (Person, error) {
	student, err := r.Students.FindByCI(ctx, ci)
	if err != nil {
		return Person{}, err
	}
	if student != nil {
		return Person{Kind: KindStudent, Student: student}, nil
	}

	instructor, err := r.Instructors.FindByCI(ctx, ci)
	if err != nil {
		return Person{}, err
	}
	if instructor != nil {
		return Person{Kind: KindInstructor, Instructor: instructor}, nil
	}

	return Person{}, ErrIdentityNotFound
}
