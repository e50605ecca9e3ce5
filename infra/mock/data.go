package mock

import (
	"time"

	"github.com/CrestNiraj12/termsocial/domain"
)

// CurrentUser is the signed-in account of the mock backend.
var CurrentUser = domain.User{
	ID:       "u1",
	Name:     "Ariel Faivisovich",
	Avatar:   "https://i.pravatar.cc/150?img=12",
	Verified: true,
}

// CandidateAuthors are the authors refresh picks from.
var CandidateAuthors = []domain.User{
	{ID: "u4", Name: "María González", Avatar: "https://i.pravatar.cc/150?img=1"},
	{ID: "u5", Name: "Carlos Ruiz", Avatar: "https://i.pravatar.cc/150?img=3", Verified: true},
	{ID: "u6", Name: "Ana Martínez", Avatar: "https://i.pravatar.cc/150?img=9"},
	{ID: "u7", Name: "Diego López", Avatar: "https://i.pravatar.cc/150?img=7", Verified: true},
	{ID: "u8", Name: "Sofia Chen", Avatar: "https://i.pravatar.cc/150?img=4"},
}

// CandidateTexts are the post bodies refresh picks from.
var CandidateTexts = []string{
	"¡Acabo de terminar mi café matutino y estoy listo para conquistar el día! ☕️✨",
	"¿Alguien más siente que los lunes deberían ser opcionales? 😴",
	"Trabajando en un nuevo proyecto con Flutter. ¡La curva de aprendizaje vale la pena! 🚀",
	"Recomiendo este libro que estoy leyendo: 'Clean Code'. Cambiará tu forma de programar 📚",
	"¿Cuál es su framework favorito para desarrollo web? Estoy entre React y Vue 🤔",
}

// SeedPosts returns the posts the feed starts with, newest first.
func SeedPosts() []domain.Post {
	loc := time.Local
	return []domain.Post{
		{
			ID:        "1",
			Author:    CurrentUser,
			Content:   "¡Hola comunidad! Este es mi primer post en esta increíble plataforma. Estoy emocionado de compartir mis ideas con todos ustedes. 🚀",
			CreatedAt: time.Date(2025, time.July, 1, 10, 0, 0, 0, loc),
			Likes:     24,
			Shares:    3,
		},
		{
			ID: "2",
			Author: domain.User{
				ID:     "u2",
				Name:   "Coder Jane",
				Avatar: "https://i.pravatar.cc/150?img=5",
			},
			Content:   "¿Alguien conoce buenas librerías para React Native? Estoy trabajando en un proyecto y necesito algunas recomendaciones. 💻",
			CreatedAt: time.Date(2025, time.July, 1, 9, 45, 0, 0, loc),
			Likes:     15,
			Comments: []domain.Comment{{
				ID:        "c1",
				Author:    domain.CommentAuthor{Name: "Tech Expert", Avatar: "https://i.pravatar.cc/150?img=10"},
				Content:   "Te recomiendo Expo, React Navigation y Reanimated!",
				CreatedAt: time.Date(2025, time.July, 1, 9, 50, 0, 0, loc),
			}},
			Shares: 2,
		},
	}
}

// DefaultProfile is the profile card of CurrentUser.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		User: domain.User{
			ID:       CurrentUser.ID,
			Name:     "Ariela Faivisovich",
			Avatar:   "https://i.pravatar.cc/300?img=1",
			Verified: true,
		},
		Username:  "@ariela_dev",
		Email:     "ariela@example.com",
		Bio:       "Desarrolladora apasionada de React y React Native 💻\nCreando experiencias móviles increíbles ✨\nAmante del código limpio y la innovación 🚀",
		Location:  "Buenos Aires, Argentina",
		Followers: 1234,
		Following: 456,
		PostCount: 89,
		JoinDate:  "Marzo 2023",
		Posts: []domain.ProfilePost{
			{ID: "1", Content: "¡Acabé de lanzar mi nueva aplicación! 🚀", Age: "2h", Likes: 24, Comments: 8},
			{ID: "2", Content: "Trabajando en un proyecto increíble con React Native...", Age: "1d", Likes: 15, Comments: 3},
			{ID: "3", Content: "Buenos días! ¿Cómo están todos? ☀️", Age: "3d", Likes: 42, Comments: 12},
		},
	}
}
