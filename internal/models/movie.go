package models

// Movie представляет фильм из каталога.
type Movie struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Genre     string   `json:"genre"`
	Runtime   string   `json:"runtime"`
	Rating    float64  `json:"rating"`
	Cast      []string `json:"cast"`
	Plot      string   `json:"plot"`
	PosterURL string   `json:"posterUrl"`
}

// InsertMovieRequest представляет тело запроса на добавление фильма.
// Числовые поля - указатели, чтобы отличать отсутствие значения от нуля.
type InsertMovieRequest struct {
	Title     string   `json:"title" validate:"required"`
	Year      *int     `json:"year" validate:"required"`
	Genre     string   `json:"genre" validate:"required"`
	Runtime   string   `json:"runtime" validate:"required"`
	Rating    *float64 `json:"rating" validate:"required"`
	Cast      []string `json:"cast" validate:"required,min=1,dive,required"`
	Plot      string   `json:"plot" validate:"required"`
	PosterURL string   `json:"posterUrl" validate:"required"`
}

// ToMovie преобразует провалидированный запрос в модель фильма.
func (r InsertMovieRequest) ToMovie() *Movie {
	m := &Movie{
		Title:     r.Title,
		Genre:     r.Genre,
		Runtime:   r.Runtime,
		Cast:      append([]string(nil), r.Cast...),
		Plot:      r.Plot,
		PosterURL: r.PosterURL,
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	return m
}

// DeleteMovieResponse - ответ на удаление фильма с оставшимся каталогом.
type DeleteMovieResponse struct {
	Message   string  `json:"message"`
	NewMovies []Movie `json:"newMovies"`
}

// PosterResponse - ответ на загрузку постера.
type PosterResponse struct {
	PosterURL string `json:"posterUrl"`
}
