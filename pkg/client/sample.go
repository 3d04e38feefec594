package client

import "gallery/pkg/model"

var sampleArtworks = []model.Artwork{
	{
		ID:          "1",
		Title:       "Sunset Over Nairobi",
		Artist:      "James Mwangi",
		Description: "A stunning depiction of the Nairobi skyline at sunset, showcasing the vibrant colors and energy of Kenya's capital city.",
		Price:       45000,
		ImageURL:    "https://images.unsplash.com/photo-1575550959106-5a7defe28b56?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		Dimensions:  "70cm x 90cm",
		Medium:      "Oil on canvas",
		Year:        2023,
		Status:      model.ArtworkAvailable,
	},
	{
		ID:          "2",
		Title:       "Maasai Warriors",
		Artist:      "Nancy Otieno",
		Description: "An expressive portrayal of Maasai warriors in traditional attire, celebrating their rich cultural heritage and resilience.",
		Price:       38000,
		ImageURL:    "https://images.unsplash.com/photo-1523805009345-7448845a9e53?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		Dimensions:  "60cm x 80cm",
		Medium:      "Acrylic on canvas",
		Year:        2022,
		Status:      model.ArtworkAvailable,
	},
	{
		ID:          "3",
		Title:       "Wildlife of Amboseli",
		Artist:      "Peter Kamau",
		Description: "A detailed painting of elephants against the backdrop of Mount Kilimanjaro, captured in the golden light of the African savanna.",
		Price:       52000,
		ImageURL:    "https://images.unsplash.com/photo-1521651201574-7f69e7f7e9ff?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		Dimensions:  "80cm x 100cm",
		Medium:      "Oil on canvas",
		Year:        2023,
		Status:      model.ArtworkAvailable,
	},
	{
		ID:          "4",
		Title:       "Nairobi By Night",
		Artist:      "Sophia Wambui",
		Description: "A modern interpretation of Nairobi's bustling nightlife, with vibrant colors representing the energy and spirit of the city after dark.",
		Price:       35000,
		ImageURL:    "https://images.unsplash.com/photo-1596005554384-d293674c91d7?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		Dimensions:  "60cm x 75cm",
		Medium:      "Mixed media",
		Year:        2023,
		Status:      model.ArtworkAvailable,
	},
}

var sampleExhibitions = []model.Exhibition{
	{
		ID:             "1",
		Title:          "Contemporary African Visions",
		Description:    "Showcasing emerging Kenyan artists who are reshaping the contemporary art scene with bold expressions of identity and social commentary.",
		Location:       "National Museum of Kenya, Nairobi",
		StartDate:      "2025-05-15",
		EndDate:        "2025-06-15",
		TicketPrice:    1200,
		ImageURL:       "https://images.unsplash.com/photo-1594122230689-45899d9e6f69?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		TotalSlots:     500,
		AvailableSlots: 350,
		Status:         model.ExhibitionUpcoming,
	},
	{
		ID:             "2",
		Title:          "Traditions & Transitions",
		Description:    "An exploration of how traditional Kenyan art forms are evolving in the 21st century, bridging ancestral techniques with modern perspectives.",
		Location:       "Karen Village Art Center, Karen",
		StartDate:      "2025-06-10",
		EndDate:        "2025-07-10",
		TicketPrice:    1500,
		ImageURL:       "https://images.unsplash.com/photo-1547891654-e66ed7ebb968?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		TotalSlots:     300,
		AvailableSlots: 220,
		Status:         model.ExhibitionUpcoming,
	},
	{
		ID:             "3",
		Title:          "Colors of Kenya",
		Description:    "A vibrant celebration of Kenya's landscapes, wildlife, and cultural diversity through the eyes of prominent local artists.",
		Location:       "Nairobi Gallery, CBD",
		StartDate:      "2025-07-20",
		EndDate:        "2025-08-20",
		TicketPrice:    1000,
		ImageURL:       "https://images.unsplash.com/photo-1582555172866-f73bb12a2ab3?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		TotalSlots:     400,
		AvailableSlots: 400,
		Status:         model.ExhibitionUpcoming,
	},
}

// SampleArtworks returns a copy of the catalog served while the API is offline.
func SampleArtworks() []model.Artwork {
	return append([]model.Artwork(nil), sampleArtworks...)
}

func SampleExhibitions() []model.Exhibition {
	return append([]model.Exhibition(nil), sampleExhibitions...)
}
