package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrCategoryNotFound indicates a category key absent from the table.
	ErrCategoryNotFound = constError("category not found")

	// ErrProductNotFound indicates a product key absent from its category.
	ErrProductNotFound = constError("product not found")

	// ErrUnsupportedSchema indicates a dataset whose schema_version is missing,
	// malformed, or outside the supported range.
	ErrUnsupportedSchema = constError("unsupported dataset schema version")

	// ErrNegativeFactor indicates a negative production or usage factor.
	ErrNegativeFactor = constError("negative emission factor")

	// ErrUnsupportedLabel indicates a label or source the PDF report fonts
	// (Windows-1252) cannot show.
	ErrUnsupportedLabel = constError("text not representable in Windows-1252")

	// ErrEmptyDataset indicates a dataset with no categories.
	ErrEmptyDataset = constError("dataset has no categories")
)
