package web

// Gradient is a pair of palette tokens, e.g. {"purple-500", "pink-500"}.
type Gradient struct {
	From, To string
}

// Practice section on the Take Care page.
type Section struct {
	Title       string
	Icon        Icon
	Color       Gradient
	Description string
	Image       string
	Practices   []string
	Playlists   []SuggestedPlaylist
}

// SuggestedPlaylist is a named recommendation with a short blurb.
type SuggestedPlaylist struct {
	Name        string
	Description string
}

// Article is a blog card.
type Article struct {
	Title    string
	Excerpt  string
	Image    string
	Icon     Icon
	Color    Gradient
	ReadTime string
	Author   string
	Tags     []string
	Spotify  string
}

// ShownTags is what the card has room for.
func (a Article) ShownTags() []string {
	if len(a.Tags) > 2 {
		return a.Tags[:2]
	}
	return a.Tags
}

// Feature is a small illustrated card on the home page.
type Feature struct {
	Title string
	Text  string
	Icon  Icon
	Color Gradient
}

// Example is a sample playlist tile on the home page.
type Example struct {
	Name  string
	Blurb string
	Image string
}

var homeFeatures = []Feature{
	{Title: "Deep analysis", Text: "Genres, top artists, and a breakdown of the sound that makes your playlist.", Icon: IconMusic, Color: Gradient{"pink-500", "purple-500"}},
	{Title: "Mood & emotion", Text: "Valence, energy and danceability mapped to friendly mood labels and colors.", Icon: IconHeart, Color: Gradient{"green-400", "teal-400"}},
	{Title: "Beautiful visuals", Text: "Radar & bar charts, palette suggestions and calm pastel-themed UI for sharing.", Icon: IconSparkles, Color: Gradient{"indigo-500", "blue-500"}},
}

var homeExamples = []Example{
	{Name: "Acoustic Calm", Blurb: "Soft acoustic tracks to slow down", Image: "https://images.pexels.com/photos/164853/pexels-photo-164853.jpeg?auto=compress&cs=tinysrgb&w=200"},
	{Name: "Upbeat Energy", Blurb: "High tempo and feel-good hits", Image: "https://images.pexels.com/photos/167092/pexels-photo-167092.jpeg?auto=compress&cs=tinysrgb&w=200"},
	{Name: "Night Drive", Blurb: "Synthwave and chilled electronic", Image: "https://images.pexels.com/photos/3971996/pexels-photo-3971996.jpeg?auto=compress&cs=tinysrgb&w=200"},
}

var takeCareSections = []Section{
	{
		Title:       "Meditation",
		Icon:        IconFlower,
		Color:       Gradient{"purple-500", "pink-500"},
		Description: "Find inner peace through guided meditation and mindfulness practices.",
		Image:       "https://images.pexels.com/photos/3822621/pexels-photo-3822621.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Practices: []string{
			"Breathing exercises for stress relief",
			"Body scan meditation",
			"Loving-kindness meditation",
			"Mindful awareness practice",
		},
		Playlists: []SuggestedPlaylist{
			{Name: "Peaceful Piano", Description: "Relax and indulge with beautiful piano pieces"},
			{Name: "Ambient Relaxation", Description: "Softly spoken affirmations with tranquil music"},
		},
	},
	{
		Title:       "Exercise",
		Icon:        IconActivity,
		Color:       Gradient{"blue-400", "teal-400"},
		Description: "Energize your body and mind with movement and physical activity.",
		Image:       "https://images.pexels.com/photos/4056723/pexels-photo-4056723.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Practices: []string{
			"Cardio workouts for endurance",
			"Strength training basics",
			"HIIT for maximum efficiency",
			"Stretching and flexibility",
		},
		Playlists: []SuggestedPlaylist{
			{Name: "Power Workout", Description: "High-energy beats to fuel your fitness"},
			{Name: "Running Motivation", Description: "Keep your pace with upbeat tracks"},
		},
	},
	{
		Title:       "Yoga",
		Icon:        IconHeart,
		Color:       Gradient{"teal-400", "green-400"},
		Description: "Connect body, mind, and spirit through yoga and gentle movement.",
		Image:       "https://images.pexels.com/photos/3822906/pexels-photo-3822906.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Practices: []string{
			"Morning sun salutations",
			"Restorative evening flows",
			"Balance and stability poses",
			"Breathwork and pranayama",
		},
		Playlists: []SuggestedPlaylist{
			{Name: "Yoga & Meditation", Description: "Calming sounds for your practice"},
			{Name: "Nature Sounds", Description: "Connect with earth through natural ambience"},
		},
	},
}

var quickTips = []string{
	"Try 5 minutes of breathing daily",
	"Move your body for at least 20 minutes",
	"End the day with a short reflection",
}

var articles = []Article{
	{
		Title:    "How Music Shapes Your Mood — The Neuroscience Behind the Beat",
		Excerpt:  "From heart rate to memory recall, music changes the chemistry of our brains. Learn which musical features trigger emotion and how to use them intentionally to shift mood.",
		Image:    "https://images.pexels.com/photos/3755421/pexels-photo-3755421.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Icon:     IconBrain,
		Color:    Gradient{"pink-500", "rose-500"},
		ReadTime: "7 min read",
		Author:   "Dr. S. Kapoor",
		Tags:     []string{"science", "emotion", "research"},
		Spotify:  "https://open.spotify.com/playlist/37i9dQZF1DX4WYpdgoIcn6",
	},
	{
		Title:    "Design Your Morning — Playlists That Wake You Gently (and Fast)",
		Excerpt:  "A practical guide to building a morning playlist that matches the different phases of waking up — gentle openings, energising mid-section, and focus-ready closers.",
		Image:    "https://images.pexels.com/photos/3769716/pexels-photo-3769716.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Icon:     IconCoffee,
		Color:    Gradient{"purple-500", "indigo-500"},
		ReadTime: "5 min read",
		Author:   "Lena M.",
		Tags:     []string{"curation", "productivity", "tips"},
		Spotify:  "https://open.spotify.com/playlist/37i9dQZF1DWY4xHQp97fN6",
	},
	{
		Title:    "Music Therapy — Evidence, Practices & Everyday Uses",
		Excerpt:  "A friendly overview of music therapy techniques you can use at home and what to expect from professional sessions. Includes breathing exercises paired with song examples.",
		Image:    "https://images.pexels.com/photos/3822621/pexels-photo-3822621.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Icon:     IconHeart,
		Color:    Gradient{"blue-500", "cyan-400"},
		ReadTime: "8 min read",
		Author:   "Therapist Collective",
		Tags:     []string{"therapy", "wellbeing", "practice"},
		Spotify:  "https://open.spotify.com/playlist/37i9dQZF1DX3Ogo9pFvBkY",
	},
	{
		Title:    "Nostalgia in Music — Why Old Songs Feel Like Home",
		Excerpt:  "Nostalgia boosts belonging and comfort — but it can also be bittersweet. We break down why certain harmonies, timbres and lyrics unlock memory lanes.",
		Image:    "https://images.pexels.com/photos/167092/pexels-photo-167092.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Icon:     IconSparkles,
		Color:    Gradient{"teal-400", "green-400"},
		ReadTime: "6 min read",
		Author:   "R. Patel",
		Tags:     []string{"culture", "memory", "story"},
		Spotify:  "https://open.spotify.com/playlist/37i9dQZF1DWY4xHQp97fN6",
	},
	{
		Title:    "Rhythm & Work — Use Tempo to Enter Flow",
		Excerpt:  "Tempo regulates perceived time and attention. Here’s how to pick BPM ranges for deep work, light tasks, and creative bursts — plus a sample playlist for each.",
		Image:    "https://images.pexels.com/photos/3971996/pexels-photo-3971996.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Icon:     IconMusic,
		Color:    Gradient{"orange-400", "amber-400"},
		ReadTime: "5 min read",
		Author:   "Productivity Lab",
		Tags:     []string{"focus", "tempo", "work"},
		Spotify:  "https://open.spotify.com/playlist/37i9dQZF1DX8NTLI2TtZa6",
	},
	{
		Title:    "Build Emotional Playlists — A Simple 5-Step Method",
		Excerpt:  "A short, hands-on framework for making playlists that support specific emotional goals: calm, energy, nostalgia, motivation, and healing.",
		Image:    "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg?auto=compress&cs=tinysrgb&w=1600",
		Icon:     IconHeart,
		Color:    Gradient{"pink-500", "purple-500"},
		ReadTime: "6 min read",
		Author:   "Curation Studio",
		Tags:     []string{"how-to", "curation", "emotions"},
		Spotify:  "https://open.spotify.com/playlist/37i9dQZF1DXc6IFF23C9jj",
	},
}

var popularArticles = []string{
	"How Music Shapes Your Mood",
	"Build Emotional Playlists",
	"Rhythm & Work — Use Tempo to Enter Flow",
}
