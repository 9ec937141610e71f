package service

import "fmt"

// Phân loại lỗi nghiệp vụ. Handler dựa vào loại lỗi để chọn HTTP status:
// ValidationError → 400, NotFoundError → 404, ConflictError (và
// InvalidTransitionError) → 409. Lỗi khác coi như lỗi hệ thống.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " không tồn tại" }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// InvalidTransitionError là dạng đặc biệt của ConflictError cho state machine đơn hàng
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("Không thể chuyển trạng thái đơn hàng từ %s sang %s", e.From, e.To)
}
