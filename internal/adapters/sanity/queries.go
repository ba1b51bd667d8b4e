package sanity

import "villa_site/internal/domain"

// Drafts live under the "drafts." id prefix and must never reach the site.
const published = `!(_id in path("drafts.**"))`

// Singletons are fetched as a one-element slice so every kind decodes the
// same way.
var queries = map[string]string{
	domain.KindSettings: `*[_type == "siteSettings" && ` + published + `][0...1]`,
	domain.KindHomepage: `*[_type == "homepage" && ` + published + `][0...1]{
  ...,
  "heroVideoUrl": heroVideo.asset->url
}`,
	domain.KindRoom: `*[_type == "room" && ` + published + `] | order(order asc, _createdAt asc){
  _id, name, "slug": slug.current, capacity, size, bedType, images, features, description
}`,
	domain.KindSeason: `*[_type == "season" && ` + published + `] | order(order asc, _createdAt asc){
  _id, name, period, pricePerNight, minNights, description, isPopular
}`,
	domain.KindExtra: `*[_type == "extra" && ` + published + `] | order(order asc, _createdAt asc){
  _id, name, price, unit, description
}`,
	domain.KindGallery: `*[_type == "galleryImage" && ` + published + `] | order(order asc, _createdAt asc){
  _id, image, category, featured, "alt": coalesce(alt, image.alt)
}`,
	domain.KindTestimonial: `*[_type == "testimonial" && ` + published + `] | order(order asc, _createdAt desc){
  _id, name, location, date, rating, text, avatar
}`,
	domain.KindFAQ: `*[_type == "faqItem" && ` + published + `] | order(order asc, _createdAt asc){
  _id, question, answer
}`,
	domain.KindAmenity: `*[_type == "amenityCategory" && ` + published + `] | order(order asc, _createdAt asc){
  _id, name, icon, items
}`,
	domain.KindExperience: `*[_type == "experience" && ` + published + `] | order(order asc, _createdAt asc){
  _id, title, description, duration, distance, tags, image
}`,
}
