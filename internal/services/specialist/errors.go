package specialist

import "errors"

var ErrSpecialistNotFound = errors.New("specialist not found")
