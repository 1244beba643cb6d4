package domain

// FormField names one input of the registration form.
type FormField string

const (
	FieldName  FormField = "name"
	FieldAge   FormField = "age"
	FieldEmail FormField = "email"
)

// FormValues is the raw, unparsed state of the registration form.
type FormValues struct {
	Name  string
	Age   string
	Email string
}
