// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

// defaultRegions is the built-in offline table. Boxes are coarse; where two
// countries' boxes overlap, the one listed first claims the overlap, so small
// countries and carve-outs come before their larger neighbours.
func defaultRegions() []Region {
	return []Region{
		// Europe
		{MinLat: 51.4, MaxLat: 55.4, MinLng: -10.6, MaxLng: -6.0, Country: "Ireland", Cities: []RegionCity{
			{Name: "Dublin", Lat: 53.3498, Lng: -6.2603, RadiusKm: 15},
			{Name: "Cork", Lat: 51.8985, Lng: -8.4756, RadiusKm: 10},
		}},
		{MinLat: 49.9, MaxLat: 58.7, MinLng: -8.2, MaxLng: 1.8, Country: "United Kingdom", Cities: []RegionCity{
			{Name: "London", Lat: 51.5074, Lng: -0.1278, RadiusKm: 30},
			{Name: "Manchester", Lat: 53.4808, Lng: -2.2426, RadiusKm: 20},
			{Name: "Birmingham", Lat: 52.4862, Lng: -1.8904, RadiusKm: 20},
			{Name: "Liverpool", Lat: 53.4084, Lng: -2.9916, RadiusKm: 15},
			{Name: "Edinburgh", Lat: 55.9533, Lng: -3.1883, RadiusKm: 15},
			{Name: "Glasgow", Lat: 55.8642, Lng: -4.2518, RadiusKm: 15},
			{Name: "Belfast", Lat: 54.5973, Lng: -5.9301, RadiusKm: 12},
		}},
		{MinLat: 63.3, MaxLat: 66.6, MinLng: -24.5, MaxLng: -13.5, Country: "Iceland", Cities: []RegionCity{
			{Name: "Reykjavik", Lat: 64.1466, Lng: -21.9426, RadiusKm: 15},
		}},
		{MinLat: 36.9, MaxLat: 42.2, MinLng: -9.6, MaxLng: -6.2, Country: "Portugal", Cities: []RegionCity{
			{Name: "Lisbon", Lat: 38.7223, Lng: -9.1393, RadiusKm: 15},
			{Name: "Porto", Lat: 41.1579, Lng: -8.6291, RadiusKm: 10},
		}},
		{MinLat: 36.0, MaxLat: 42.4, MinLng: -9.3, MaxLng: 3.3, Country: "Spain", Cities: []RegionCity{
			{Name: "Madrid", Lat: 40.4168, Lng: -3.7038, RadiusKm: 20},
			{Name: "Barcelona", Lat: 41.3851, Lng: 2.1734, RadiusKm: 15},
			{Name: "Seville", Lat: 37.3891, Lng: -5.9845, RadiusKm: 10},
			{Name: "Valencia", Lat: 39.4699, Lng: -0.3763, RadiusKm: 10},
		}},
		{MinLat: 42.4, MaxLat: 43.8, MinLng: -9.3, MaxLng: -1.8, Country: "Spain", Cities: []RegionCity{
			{Name: "Bilbao", Lat: 43.2630, Lng: -2.9350, RadiusKm: 10},
			{Name: "San Sebastian", Lat: 43.3183, Lng: -1.9812, RadiusKm: 8},
		}},
		{MinLat: 52.0, MaxLat: 53.6, MinLng: 4.4, MaxLng: 7.2, Country: "Netherlands", Cities: []RegionCity{
			{Name: "Amsterdam", Lat: 52.3676, Lng: 4.9041, RadiusKm: 15},
			{Name: "Utrecht", Lat: 52.0907, Lng: 5.1214, RadiusKm: 8},
		}},
		{MinLat: 51.3, MaxLat: 52.0, MinLng: 3.3, MaxLng: 6.0, Country: "Netherlands", Cities: []RegionCity{
			{Name: "Rotterdam", Lat: 51.9244, Lng: 4.4777, RadiusKm: 12},
			{Name: "Eindhoven", Lat: 51.4416, Lng: 5.4697, RadiusKm: 8},
		}},
		{MinLat: 50.3, MaxLat: 51.3, MinLng: 3.2, MaxLng: 6.0, Country: "Belgium", Cities: []RegionCity{
			{Name: "Brussels", Lat: 50.8503, Lng: 4.3517, RadiusKm: 12},
			{Name: "Antwerp", Lat: 51.2194, Lng: 4.4025, RadiusKm: 8},
			{Name: "Bruges", Lat: 51.2093, Lng: 3.2247, RadiusKm: 6},
		}},
		{MinLat: 49.45, MaxLat: 50.2, MinLng: 5.7, MaxLng: 6.5, Country: "Luxembourg", Cities: []RegionCity{
			{Name: "Luxembourg", Lat: 49.6116, Lng: 6.1319, RadiusKm: 8},
		}},
		{MinLat: 45.8, MaxLat: 47.7, MinLng: 6.0, MaxLng: 10.5, Country: "Switzerland", Cities: []RegionCity{
			{Name: "Zurich", Lat: 47.3769, Lng: 8.5417, RadiusKm: 12},
			{Name: "Geneva", Lat: 46.2044, Lng: 6.1432, RadiusKm: 10},
			{Name: "Bern", Lat: 46.9480, Lng: 7.4474, RadiusKm: 8},
		}},
		{MinLat: 42.3, MaxLat: 51.1, MinLng: -4.8, MaxLng: 7.6, Country: "France", Cities: []RegionCity{
			{Name: "Paris", Lat: 48.8566, Lng: 2.3522, RadiusKm: 25},
			{Name: "Lyon", Lat: 45.7640, Lng: 4.8357, RadiusKm: 15},
			{Name: "Marseille", Lat: 43.2965, Lng: 5.3698, RadiusKm: 15},
			{Name: "Nice", Lat: 43.7102, Lng: 7.2620, RadiusKm: 10},
			{Name: "Bordeaux", Lat: 44.8378, Lng: -0.5792, RadiusKm: 12},
			{Name: "Toulouse", Lat: 43.6047, Lng: 1.4442, RadiusKm: 12},
		}},
		{MinLat: 46.4, MaxLat: 48.0, MinLng: 9.5, MaxLng: 17.2, Country: "Austria", Cities: []RegionCity{
			{Name: "Salzburg", Lat: 47.8095, Lng: 13.0550, RadiusKm: 8},
			{Name: "Innsbruck", Lat: 47.2692, Lng: 11.4041, RadiusKm: 8},
			{Name: "Graz", Lat: 47.0707, Lng: 15.4395, RadiusKm: 8},
		}},
		{MinLat: 48.0, MaxLat: 49.0, MinLng: 14.7, MaxLng: 17.2, Country: "Austria", Cities: []RegionCity{
			{Name: "Vienna", Lat: 48.2082, Lng: 16.3738, RadiusKm: 15},
		}},
		{MinLat: 48.6, MaxLat: 50.9, MinLng: 12.5, MaxLng: 18.9, Country: "Czechia", Cities: []RegionCity{
			{Name: "Prague", Lat: 50.0755, Lng: 14.4378, RadiusKm: 15},
			{Name: "Brno", Lat: 49.1951, Lng: 16.6068, RadiusKm: 8},
		}},
		{MinLat: 47.3, MaxLat: 54.9, MinLng: 5.9, MaxLng: 14.9, Country: "Germany", Cities: []RegionCity{
			{Name: "Berlin", Lat: 52.5200, Lng: 13.4050, RadiusKm: 25},
			{Name: "Munich", Lat: 48.1351, Lng: 11.5820, RadiusKm: 20},
			{Name: "Hamburg", Lat: 53.5511, Lng: 9.9937, RadiusKm: 20},
			{Name: "Frankfurt", Lat: 50.1109, Lng: 8.6821, RadiusKm: 15},
			{Name: "Cologne", Lat: 50.9375, Lng: 6.9603, RadiusKm: 15},
			{Name: "Dresden", Lat: 51.0504, Lng: 13.7373, RadiusKm: 10},
		}},
		{MinLat: 54.5, MaxLat: 57.8, MinLng: 8.0, MaxLng: 12.7, Country: "Denmark", Cities: []RegionCity{
			{Name: "Copenhagen", Lat: 55.6761, Lng: 12.5683, RadiusKm: 12},
			{Name: "Aarhus", Lat: 56.1629, Lng: 10.2039, RadiusKm: 8},
		}},
		{MinLat: 57.9, MaxLat: 71.2, MinLng: 4.5, MaxLng: 12.5, Country: "Norway", Cities: []RegionCity{
			{Name: "Oslo", Lat: 59.9139, Lng: 10.7522, RadiusKm: 15},
			{Name: "Bergen", Lat: 60.3913, Lng: 5.3221, RadiusKm: 10},
		}},
		{MinLat: 68.5, MaxLat: 71.2, MinLng: 12.5, MaxLng: 31.1, Country: "Norway", Cities: []RegionCity{
			{Name: "Tromsø", Lat: 69.6492, Lng: 18.9553, RadiusKm: 10},
		}},
		{MinLat: 59.8, MaxLat: 70.1, MinLng: 21.0, MaxLng: 30.0, Country: "Finland", Cities: []RegionCity{
			{Name: "Helsinki", Lat: 60.1699, Lng: 24.9384, RadiusKm: 15},
		}},
		{MinLat: 55.3, MaxLat: 69.1, MinLng: 11.0, MaxLng: 24.2, Country: "Sweden", Cities: []RegionCity{
			{Name: "Stockholm", Lat: 59.3293, Lng: 18.0686, RadiusKm: 20},
			{Name: "Gothenburg", Lat: 57.7089, Lng: 11.9746, RadiusKm: 12},
		}},
		{MinLat: 45.7, MaxLat: 48.6, MinLng: 16.1, MaxLng: 22.9, Country: "Hungary", Cities: []RegionCity{
			{Name: "Budapest", Lat: 47.4979, Lng: 19.0402, RadiusKm: 20},
		}},
		{MinLat: 43.6, MaxLat: 48.3, MinLng: 20.2, MaxLng: 29.7, Country: "Romania", Cities: []RegionCity{
			{Name: "Bucharest", Lat: 44.4268, Lng: 26.1025, RadiusKm: 20},
			{Name: "Cluj-Napoca", Lat: 46.7712, Lng: 23.6236, RadiusKm: 10},
		}},
		{MinLat: 44.4, MaxLat: 52.4, MinLng: 23.5, MaxLng: 40.2, Country: "Ukraine", Cities: []RegionCity{
			{Name: "Kyiv", Lat: 50.4501, Lng: 30.5234, RadiusKm: 20},
			{Name: "Lviv", Lat: 49.8397, Lng: 24.0297, RadiusKm: 10},
		}},
		{MinLat: 49.0, MaxLat: 54.9, MinLng: 14.1, MaxLng: 24.2, Country: "Poland", Cities: []RegionCity{
			{Name: "Warsaw", Lat: 52.2297, Lng: 21.0122, RadiusKm: 15},
			{Name: "Krakow", Lat: 50.0647, Lng: 19.9450, RadiusKm: 10},
			{Name: "Gdansk", Lat: 54.3520, Lng: 18.6466, RadiusKm: 10},
		}},
		{MinLat: 36.6, MaxLat: 47.1, MinLng: 6.6, MaxLng: 18.5, Country: "Italy", Cities: []RegionCity{
			{Name: "Rome", Lat: 41.9028, Lng: 12.4964, RadiusKm: 20},
			{Name: "Milan", Lat: 45.4642, Lng: 9.1900, RadiusKm: 15},
			{Name: "Venice", Lat: 45.4408, Lng: 12.3155, RadiusKm: 10},
			{Name: "Florence", Lat: 43.7696, Lng: 11.2558, RadiusKm: 10},
			{Name: "Naples", Lat: 40.8518, Lng: 14.2681, RadiusKm: 12},
			{Name: "Turin", Lat: 45.0703, Lng: 7.6869, RadiusKm: 10},
		}},
		{MinLat: 34.8, MaxLat: 41.8, MinLng: 19.3, MaxLng: 28.3, Country: "Greece", Cities: []RegionCity{
			{Name: "Athens", Lat: 37.9838, Lng: 23.7275, RadiusKm: 20},
			{Name: "Thessaloniki", Lat: 40.6401, Lng: 22.9444, RadiusKm: 10},
		}},
		{MinLat: 35.8, MaxLat: 42.1, MinLng: 26.0, MaxLng: 44.8, Country: "Turkey", Cities: []RegionCity{
			{Name: "Istanbul", Lat: 41.0082, Lng: 28.9784, RadiusKm: 30},
			{Name: "Ankara", Lat: 39.9334, Lng: 32.8597, RadiusKm: 15},
		}},

		// Africa and the Middle East
		{MinLat: 27.6, MaxLat: 35.9, MinLng: -13.2, MaxLng: -1.0, Country: "Morocco", Cities: []RegionCity{
			{Name: "Marrakesh", Lat: 31.6295, Lng: -7.9811, RadiusKm: 12},
			{Name: "Casablanca", Lat: 33.5731, Lng: -7.5898, RadiusKm: 15},
		}},
		{MinLat: 22.0, MaxLat: 31.7, MinLng: 24.7, MaxLng: 36.9, Country: "Egypt", Cities: []RegionCity{
			{Name: "Cairo", Lat: 30.0444, Lng: 31.2357, RadiusKm: 25},
		}},
		{MinLat: 22.6, MaxLat: 26.1, MinLng: 51.5, MaxLng: 56.4, Country: "United Arab Emirates", Cities: []RegionCity{
			{Name: "Dubai", Lat: 25.2048, Lng: 55.2708, RadiusKm: 25},
			{Name: "Abu Dhabi", Lat: 24.4539, Lng: 54.3773, RadiusKm: 20},
		}},
		{MinLat: -4.7, MaxLat: 5.0, MinLng: 33.9, MaxLng: 41.9, Country: "Kenya", Cities: []RegionCity{
			{Name: "Nairobi", Lat: -1.2921, Lng: 36.8219, RadiusKm: 20},
		}},
		{MinLat: -34.9, MaxLat: -22.1, MinLng: 16.4, MaxLng: 32.9, Country: "South Africa", Cities: []RegionCity{
			{Name: "Cape Town", Lat: -33.9249, Lng: 18.4241, RadiusKm: 20},
			{Name: "Johannesburg", Lat: -26.2041, Lng: 28.0473, RadiusKm: 25},
		}},

		// Asia and Oceania
		{MinLat: 6.7, MaxLat: 35.5, MinLng: 68.1, MaxLng: 97.4, Country: "India", Cities: []RegionCity{
			{Name: "New Delhi", Lat: 28.6139, Lng: 77.2090, RadiusKm: 30},
			{Name: "Mumbai", Lat: 19.0760, Lng: 72.8777, RadiusKm: 25},
			{Name: "Bangalore", Lat: 12.9716, Lng: 77.5946, RadiusKm: 20},
		}},
		{MinLat: 22.15, MaxLat: 22.56, MinLng: 113.83, MaxLng: 114.44, Country: "Hong Kong", Cities: []RegionCity{
			{Name: "Hong Kong", Lat: 22.3193, Lng: 114.1694, RadiusKm: 25},
		}},
		{MinLat: 21.9, MaxLat: 25.3, MinLng: 120.0, MaxLng: 122.0, Country: "Taiwan", Cities: []RegionCity{
			{Name: "Taipei", Lat: 25.0330, Lng: 121.5654, RadiusKm: 20},
		}},
		{MinLat: 34.3, MaxLat: 38.6, MinLng: 124.6, MaxLng: 129.6, Country: "South Korea", Cities: []RegionCity{
			{Name: "Seoul", Lat: 37.5665, Lng: 126.9780, RadiusKm: 25},
			{Name: "Busan", Lat: 35.1796, Lng: 129.0756, RadiusKm: 15},
		}},
		{MinLat: 24.0, MaxLat: 45.6, MinLng: 122.9, MaxLng: 145.9, Country: "Japan", Cities: []RegionCity{
			{Name: "Tokyo", Lat: 35.6762, Lng: 139.6503, RadiusKm: 40},
			{Name: "Osaka", Lat: 34.6937, Lng: 135.5023, RadiusKm: 20},
			{Name: "Kyoto", Lat: 35.0116, Lng: 135.7681, RadiusKm: 15},
			{Name: "Sapporo", Lat: 43.0618, Lng: 141.3545, RadiusKm: 15},
			{Name: "Hiroshima", Lat: 34.3853, Lng: 132.4553, RadiusKm: 12},
		}},
		{MinLat: 8.2, MaxLat: 23.4, MinLng: 105.5, MaxLng: 109.5, Country: "Vietnam", Cities: []RegionCity{
			{Name: "Hanoi", Lat: 21.0278, Lng: 105.8342, RadiusKm: 20},
			{Name: "Ho Chi Minh City", Lat: 10.8231, Lng: 106.6297, RadiusKm: 25},
		}},
		{MinLat: 4.6, MaxLat: 21.1, MinLng: 116.9, MaxLng: 126.6, Country: "Philippines", Cities: []RegionCity{
			{Name: "Manila", Lat: 14.5995, Lng: 120.9842, RadiusKm: 20},
		}},
		{MinLat: 1.15, MaxLat: 1.48, MinLng: 103.6, MaxLng: 104.1, Country: "Singapore", Cities: []RegionCity{
			{Name: "Singapore", Lat: 1.3521, Lng: 103.8198, RadiusKm: 25},
		}},
		{MinLat: 0.85, MaxLat: 6.7, MinLng: 99.6, MaxLng: 119.3, Country: "Malaysia", Cities: []RegionCity{
			{Name: "Kuala Lumpur", Lat: 3.1390, Lng: 101.6869, RadiusKm: 20},
		}},
		{MinLat: 5.6, MaxLat: 20.5, MinLng: 97.3, MaxLng: 105.7, Country: "Thailand", Cities: []RegionCity{
			{Name: "Bangkok", Lat: 13.7563, Lng: 100.5018, RadiusKm: 25},
			{Name: "Chiang Mai", Lat: 18.7883, Lng: 98.9853, RadiusKm: 10},
			{Name: "Phuket", Lat: 7.8804, Lng: 98.3923, RadiusKm: 15},
		}},
		{MinLat: 18.2, MaxLat: 53.6, MinLng: 73.5, MaxLng: 134.8, Country: "China", Cities: []RegionCity{
			{Name: "Beijing", Lat: 39.9042, Lng: 116.4074, RadiusKm: 30},
			{Name: "Shanghai", Lat: 31.2304, Lng: 121.4737, RadiusKm: 30},
			{Name: "Shenzhen", Lat: 22.5431, Lng: 114.0579, RadiusKm: 20},
		}},
		{MinLat: -43.7, MaxLat: -10.7, MinLng: 113.3, MaxLng: 153.6, Country: "Australia", Cities: []RegionCity{
			{Name: "Sydney", Lat: -33.8688, Lng: 151.2093, RadiusKm: 30},
			{Name: "Melbourne", Lat: -37.8136, Lng: 144.9631, RadiusKm: 30},
			{Name: "Brisbane", Lat: -27.4698, Lng: 153.0251, RadiusKm: 20},
			{Name: "Perth", Lat: -31.9505, Lng: 115.8605, RadiusKm: 20},
		}},
		{MinLat: -11.0, MaxLat: 6.0, MinLng: 95.0, MaxLng: 141.0, Country: "Indonesia", Cities: []RegionCity{
			{Name: "Jakarta", Lat: -6.2088, Lng: 106.8456, RadiusKm: 25},
			{Name: "Denpasar", Lat: -8.6500, Lng: 115.2167, RadiusKm: 15},
		}},
		{MinLat: -47.3, MaxLat: -34.4, MinLng: 166.4, MaxLng: 178.6, Country: "New Zealand", Cities: []RegionCity{
			{Name: "Auckland", Lat: -36.8485, Lng: 174.7633, RadiusKm: 20},
			{Name: "Wellington", Lat: -41.2865, Lng: 174.7762, RadiusKm: 10},
		}},

		// Americas
		{MinLat: 43.4, MaxLat: 44.5, MinLng: -80.5, MaxLng: -78.5, Country: "Canada", Cities: []RegionCity{
			{Name: "Toronto", Lat: 43.6532, Lng: -79.3832, RadiusKm: 30},
		}},
		{MinLat: 45.0, MaxLat: 49.0, MinLng: -79.5, MaxLng: -57.0, Country: "Canada", Cities: []RegionCity{
			{Name: "Montreal", Lat: 45.5017, Lng: -73.5673, RadiusKm: 20},
			{Name: "Ottawa", Lat: 45.4215, Lng: -75.6972, RadiusKm: 15},
			{Name: "Quebec City", Lat: 46.8139, Lng: -71.2080, RadiusKm: 12},
		}},
		{MinLat: 14.5, MaxLat: 24.5, MinLng: -118.4, MaxLng: -86.7, Country: "Mexico", Cities: []RegionCity{
			{Name: "Mexico City", Lat: 19.4326, Lng: -99.1332, RadiusKm: 30},
			{Name: "Guadalajara", Lat: 20.6597, Lng: -103.3496, RadiusKm: 20},
			{Name: "Cancún", Lat: 21.1619, Lng: -86.8515, RadiusKm: 15},
		}},
		{MinLat: 24.5, MaxLat: 29.5, MinLng: -109.0, MaxLng: -99.5, Country: "Mexico", Cities: []RegionCity{
			{Name: "Monterrey", Lat: 25.6866, Lng: -100.3161, RadiusKm: 20},
		}},
		{MinLat: 18.9, MaxLat: 22.3, MinLng: -160.3, MaxLng: -154.8, Country: "United States", Cities: []RegionCity{
			{Name: "Honolulu", Lat: 21.3069, Lng: -157.8583, RadiusKm: 15},
		}},
		{MinLat: 51.2, MaxLat: 71.5, MinLng: -179.2, MaxLng: -141.0, Country: "United States", Cities: []RegionCity{
			{Name: "Anchorage", Lat: 61.2181, Lng: -149.9003, RadiusKm: 15},
		}},
		{MinLat: 24.5, MaxLat: 49.0, MinLng: -125.0, MaxLng: -66.9, Country: "United States", Cities: []RegionCity{
			{Name: "New York", Lat: 40.7128, Lng: -74.0060, RadiusKm: 30},
			{Name: "Los Angeles", Lat: 34.0522, Lng: -118.2437, RadiusKm: 40},
			{Name: "San Francisco", Lat: 37.7749, Lng: -122.4194, RadiusKm: 20},
			{Name: "Chicago", Lat: 41.8781, Lng: -87.6298, RadiusKm: 30},
			{Name: "Washington", Lat: 38.9072, Lng: -77.0369, RadiusKm: 20},
			{Name: "Boston", Lat: 42.3601, Lng: -71.0589, RadiusKm: 20},
			{Name: "Seattle", Lat: 47.6062, Lng: -122.3321, RadiusKm: 20},
			{Name: "Miami", Lat: 25.7617, Lng: -80.1918, RadiusKm: 25},
			{Name: "Las Vegas", Lat: 36.1699, Lng: -115.1398, RadiusKm: 20},
		}},
		{MinLat: 41.7, MaxLat: 83.1, MinLng: -141.0, MaxLng: -52.6, Country: "Canada", Cities: []RegionCity{
			{Name: "Vancouver", Lat: 49.2827, Lng: -123.1207, RadiusKm: 20},
			{Name: "Calgary", Lat: 51.0447, Lng: -114.0719, RadiusKm: 15},
		}},
		{MinLat: -18.4, MaxLat: -0.04, MinLng: -81.4, MaxLng: -68.7, Country: "Peru", Cities: []RegionCity{
			{Name: "Lima", Lat: -12.0464, Lng: -77.0428, RadiusKm: 20},
			{Name: "Cusco", Lat: -13.5320, Lng: -71.9675, RadiusKm: 10},
		}},
		{MinLat: -33.8, MaxLat: 5.3, MinLng: -74.0, MaxLng: -34.8, Country: "Brazil", Cities: []RegionCity{
			{Name: "Rio de Janeiro", Lat: -22.9068, Lng: -43.1729, RadiusKm: 25},
			{Name: "São Paulo", Lat: -23.5505, Lng: -46.6333, RadiusKm: 30},
		}},
		{MinLat: -55.1, MaxLat: -21.8, MinLng: -73.6, MaxLng: -53.6, Country: "Argentina", Cities: []RegionCity{
			{Name: "Buenos Aires", Lat: -34.6037, Lng: -58.3816, RadiusKm: 30},
		}},

		// Last: the Russia box overlaps much of northern Asia.
		{MinLat: 41.2, MaxLat: 81.9, MinLng: 27.3, MaxLng: 180.0, Country: "Russia", Cities: []RegionCity{
			{Name: "Moscow", Lat: 55.7558, Lng: 37.6173, RadiusKm: 30},
			{Name: "Saint Petersburg", Lat: 59.9311, Lng: 30.3609, RadiusKm: 20},
		}},
	}
}
