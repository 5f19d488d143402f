// Package seed holds the built-in fallback content used when a durable
// document is absent or does not parse. Each function returns fresh values
// so hydration never aliases shared slices.
package seed

import "github.com/twomenstudio/studiopanel/internal/domain/model"

// Users returns the built-in account list: a single admin. The cleartext
// password is part of the demo trust model.
func Users() []model.User {
	return []model.User{
		{ID: "1", Username: "admin", Password: "admin@studio2024", Role: model.RoleAdmin},
	}
}

// Services returns one seed service per category.
func Services() []model.Service {
	return []model.Service{
		{
			ID:          "1",
			Title:       "Cinematic Pre-Wedding",
			Category:    model.CategoryPreWedding,
			Description: "Capture the romance and excitement before your big day with our signature cinematic style.",
			ImageURL:    "https://images.unsplash.com/photo-1596359903932-5ee35d082e6d?q=80&w=2070&auto=format&fit=crop",
			Gallery:     []string{"https://images.unsplash.com/photo-1596359903932-5ee35d082e6d?q=80&w=2070&auto=format&fit=crop"},
			Features:    []string{"2 Locations", "3 Outfit Changes", "Cinematic Highlight Reel"},
		},
		{
			ID:          "2",
			Title:       "International Wedding Coverage",
			Category:    model.CategoryWedding,
			Description: "Full coverage of your special day, documenting every emotion and detail.",
			ImageURL:    "https://picsum.photos/seed/wedding/800/600",
			Gallery:     []string{"https://picsum.photos/seed/wedding/800/600", "https://picsum.photos/seed/wed2/800/600"},
			Features:    []string{"Unlimited Hours", "2 Senior Photographers", "Drone Coverage"},
		},
		{
			ID:          "3",
			Title:       "Maternity Aesthetics",
			Category:    model.CategoryPreBaby,
			Description: "Celebrating the miracle of life with elegant and comfortable sessions.",
			ImageURL:    "https://picsum.photos/seed/maternity/800/600",
			Gallery:     []string{},
			Features:    []string{"Studio or Outdoor", "Gown Rental Included"},
		},
		{
			ID:          "4",
			Title:       "High-Fashion Editorial",
			Category:    model.CategoryPhotoshoot,
			Description: "Magazine-quality editorial shoots for models and brands.",
			ImageURL:    "https://picsum.photos/seed/fashion/800/600",
			Gallery:     []string{},
			Features:    []string{"Professional Styling", "High-End Retouching"},
		},
		{
			ID:          "5",
			Title:       "Luxury Jewelry",
			Category:    model.CategoryJewelry,
			Description: "Macro photography that highlights the brilliance of your gems.",
			ImageURL:    "https://picsum.photos/seed/jewelry/800/600",
			Gallery:     []string{},
			Features:    []string{"Macro Lens Specialist", "Lightbox Setup"},
		},
		{
			ID:          "6",
			Title:       "Apparel & Cloths",
			Category:    model.CategoryCloths,
			Description: "E-commerce and lookbook photography for fashion brands.",
			ImageURL:    "https://picsum.photos/seed/cloths/800/600",
			Gallery:     []string{},
			Features:    []string{"Ghost Mannequin", "Model Shoots"},
		},
		{
			ID:          "7",
			Title:       "Birthday Celebrations",
			Category:    model.CategoryBirthday,
			Description: "Fun, vibrant coverage for birthdays of all ages.",
			ImageURL:    "https://picsum.photos/seed/birthday/800/600",
			Gallery:     []string{},
			Features:    []string{"Candid Moments", "Group Portraits"},
		},
	}
}

// BlogPosts returns the built-in articles.
func BlogPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			ID:       "1",
			Title:    "Capturing Love in Paris",
			Excerpt:  "Our recent shoot near the Eiffel Tower was nothing short of magical.",
			Content:  "Full story about the Paris shoot...",
			Author:   "The 2 Man Studio",
			Date:     "2023-10-15",
			ImageURL: "https://picsum.photos/seed/paris/800/400",
			Category: "Destination",
			Tags:     []string{"Paris", "Wedding", "Travel"},
		},
		{
			ID:       "2",
			Title:    "Top 5 Tips for your Pre-Wedding Shoot",
			Excerpt:  "How to prepare for your session to get the best results.",
			Content:  "Preparation tips...",
			Author:   "The 2 Man Studio",
			Date:     "2023-11-02",
			ImageURL: "https://picsum.photos/seed/tips/800/400",
			Category: "Guide",
			Tags:     []string{"Tips", "Planning"},
		},
	}
}

// Destinations returns the built-in travel locations.
func Destinations() []model.Destination {
	return []model.Destination{
		{ID: "1", Country: "France", City: "Paris", Description: "The city of love.", ImageURL: "https://picsum.photos/seed/dest1/600/800"},
		{ID: "2", Country: "Italy", City: "Venice", Description: "Romantic canals and history.", ImageURL: "https://picsum.photos/seed/dest2/600/800"},
		{ID: "3", Country: "Japan", City: "Kyoto", Description: "Traditional temples and cherry blossoms.", ImageURL: "https://picsum.photos/seed/dest3/600/800"},
		{ID: "4", Country: "Iceland", City: "Reykjavik", Description: "Dramatic landscapes and northern lights.", ImageURL: "https://picsum.photos/seed/dest4/600/800"},
	}
}

// Settings returns the built-in site configuration.
func Settings() model.SiteSettings {
	return model.SiteSettings{
		SiteName:       "The 2 Men Studio",
		Tagline:        "Capturing Moments, Creating Legacies",
		LogoURL:        "assets/logo.svg",
		LogoHeight:     48,
		PrimaryColor:   "#1a1a1a",
		HeadingFont:    "Playfair Display",
		BodyFont:       "Lato",
		DarkMode:       false,
		ContactEmail:   "hello@2manstudio.com",
		ContactPhone:   "+1 (555) 0123-456",
		ContactAddress: "123 Creative Studio Blvd, New York, NY 10012",
		SocialLinks: model.SocialLinks{
			Instagram: "https://instagram.com",
			Facebook:  "https://facebook.com",
			Twitter:   "https://twitter.com",
			WhatsApp:  "https://whatsapp.com",
		},
	}
}
