package errors

// Category is the transport-agnostic classification of a failure.
type Category string

const (
	CategoryBadInput              Category = "bad_input"
	CategoryMissingResource       Category = "missing_resource"
	CategoryConflict              Category = "conflict"
	CategoryDependencyUnavailable Category = "dependency_unavailable"
	CategoryInternal              Category = "internal_error"
)

// Response is the canonical shape a failure is rendered into at a boundary.
type Response struct {
	Category  Category      `json:"error"`
	ErrorCode string        `json:"error_code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"error_details,omitempty"`
}

// responseMapper renders each variant. Infrastructure and system failures keep their
// details and cause out of the response; callers log the failure itself.
type responseMapper struct{}

func (responseMapper) Validation(f *OperationFailure) Response {
	return Response{Category: CategoryBadInput, ErrorCode: "ERR_102", Message: f.Message(), Details: f.Details()}
}

func (responseMapper) ResourceNotFound(f *OperationFailure) Response {
	return Response{Category: CategoryMissingResource, ErrorCode: "ERR_101", Message: f.Message(), Details: f.Details()}
}

func (responseMapper) ResourceConflict(f *OperationFailure) Response {
	return Response{Category: CategoryConflict, ErrorCode: "ERR_103", Message: f.Message(), Details: f.Details()}
}

func (responseMapper) Infrastructure(f *OperationFailure) Response {
	return Response{
		Category:  CategoryDependencyUnavailable,
		ErrorCode: "ERR_105",
		Message:   "Service temporarily unavailable",
	}
}

func (responseMapper) System(f *OperationFailure) Response {
	return Response{Category: CategoryInternal, ErrorCode: "ERR_104", Message: "Internal server error"}
}

// MapFailure translates f into its canonical Response.
func MapFailure(f *OperationFailure) Response {
	return Fold[Response](f, responseMapper{})
}

// CategoryOf returns the canonical category of f.
func CategoryOf(f *OperationFailure) Category {
	return MapFailure(f).Category
}
