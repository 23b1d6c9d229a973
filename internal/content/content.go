// Package content отдает статические учебные материалы платформы и слоты
// практических экзаменов. Материалы не меняются во время работы процесса,
// поэтому сервис не требует синхронизации.
package content

// QuizQuestion - вопрос тренировочного теста с вариантами ответов.
type QuizQuestion struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Category    string   `json:"category"`
}

// Flashcard - карточка для заучивания: вопрос спереди, ответ сзади.
type Flashcard struct {
	ID       int    `json:"id"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
}

// Video - метаданные обучающего видео.
type Video struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
}

// Guide - конспект по теме первой помощи.
type Guide struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Sections []string `json:"sections"`
}

// Service предоставляет учебные материалы и расписание экзаменов.
type Service struct {
	seed int64
}

// NewService создает сервис материалов. Seed управляет генерацией
// доступности экзаменационных слотов и делает ее воспроизводимой.
func NewService(seed int64) *Service {
	return &Service{seed: seed}
}

// QuizQuestions возвращает вопросы тренировочного теста.
func (s *Service) QuizQuestions() []QuizQuestion {
	return quizQuestions()
}

// Flashcards возвращает карточки для заучивания.
func (s *Service) Flashcards() []Flashcard {
	return flashcards()
}

// Videos возвращает каталог обучающих видео.
func (s *Service) Videos() []Video {
	return videos()
}

// Guides возвращает конспекты по темам.
func (s *Service) Guides() []Guide {
	return guides()
}
