package models

// NewApp builds the entity persisted for a create request. The id stays zero
// until the store assigns one.
func NewApp(dto AppDTO) App {
	var app App
	MergeApp(dto, &app)
	return app
}

// NewAppDTO builds the wire form of a stored app.
func NewAppDTO(app App) AppDTO {
	return AppDTO{
		ID:      &app.ID,
		Name:    &app.Name,
		Author:  &app.Author,
		Version: &app.Version,
	}
}

// MergeApp copies the fields present on dto onto app. Nil fields leave the
// stored value unchanged; the id is never copied.
func MergeApp(dto AppDTO, app *App) {
	if dto.Name != nil {
		app.Name = *dto.Name
	}
	if dto.Author != nil {
		app.Author = *dto.Author
	}
	if dto.Version != nil {
		app.Version = *dto.Version
	}
}
