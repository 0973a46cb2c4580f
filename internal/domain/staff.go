package domain

// Staff мастер салона (колонка календаря)
type Staff struct {
	ID      int64
	Name    string
	Initial string
}

// NewStaff создает мастера, вычисляя инициал по имени
func NewStaff(id int64, name string) *Staff {
	return &Staff{ID: id, Name: name, Initial: initialOf(name)}
}
