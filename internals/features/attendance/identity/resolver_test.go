package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"

	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	studentModel "gymku_backend/internals/features/academy/students/model"
)

type fakeStudents map[string]*studentModel.StudentModel

func (f fakeStudents) FindByCI(_ context.Context, ci string) (*studentModel.StudentModel, error) {
	return f[ci], nil
}

type fakeInstructors map[string]*instructorModel.InstructorModel

func (f fakeInstructors) FindByCI(_ context.Context, ci string) (*instructorModel.InstructorModel, error) {
	return f[ci], nil
}

func TestResolve(t *testing.T) {
	sid, _ := uuid.NewV7()
	iid, _ := uuid.NewV7()

	student := &studentModel.StudentModel{StudentID: sid, StudentName: "Ana", StudentLastname: "Quispe", StudentCI: "1234567"}
	instructor := &instructorModel.InstructorModel{InstructorID: iid, InstructorName: "Luis", InstructorLastname: "Mamani", InstructorCI: "7654321"}

	resolver := NewResolver(
		fakeStudents{"1234567": student, "9999999": student},
		fakeInstructors{"7654321": instructor, "9999999": instructor},
	)
	ctx := context.Background()

	t.Run("student", func(t *testing.T) {
		p, err := resolver.Resolve(ctx, "1234567")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.Kind != KindStudent || p.Student != student {
			t.Errorf("Resolve() = %+v, want student record", p)
		}
		if p.FullName() != "Ana Quispe" {
			t.Errorf("FullName() = %q", p.FullName())
		}
	})

	t.Run("instructor", func(t *testing.T) {
		p, err := resolver.Resolve(ctx, "7654321")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.Kind != KindInstructor || p.Instructor != instructor {
			t.Errorf("Resolve() = %+v, want instructor record", p)
		}
	})

	t.Run("student takes precedence over instructor", func(t *testing.T) {
		p, err := resolver.Resolve(ctx, "9999999")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.Kind != KindStudent {
			t.Errorf("Resolve() kind = %s, want student precedence", p.Kind)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "0000000")
		if err != ErrIdentityNotFound {
			t.Errorf("Resolve() error = %v, want ErrIdentityNotFound", err)
		}
	})
}
