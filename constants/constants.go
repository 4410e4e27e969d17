package constants

const (
	ROLE_USER  = "USER"
	ROLE_ADMIN = "ADMIN"
)

const (
	ERROR_INPUT          = "Invalid input"
	ERROR_INTERNAL_ERROR = "Internal server error"

	MISSING_LOGIN_INPUT = "Email and password are required"
	INVALID_CREDENTIALS = "Invalid email or password"
	EMAIL_ALREADY_USED  = "User with this email already exists"
	NOT_ADMIN           = "You do not have permission to access this resource"

	MISSING_TOKEN = "Missing token"
	INVALID_TOKEN = "Invalid or expired token"

	MOVIE_NOT_FOUND    = "Movie not found"
	THEATER_NOT_FOUND  = "Theater not found"
	SCREEN_NOT_FOUND   = "Screen not found"
	SEAT_NOT_FOUND     = "Seat not found"
	SHOWTIME_NOT_FOUND = "Showtime not found"
	BOOKING_NOT_FOUND  = "Booking not found"
	USER_NOT_FOUND     = "User not found"

	SHOWTIME_OVERLAP     = "This screen has an overlapping showtime"
	SEATS_ALREADY_BOOKED = "One or more seats are already booked"
	SHOWTIME_HAS_TICKETS = "Cannot delete showtime with existing bookings"
	NOT_BOOKING_OWNER    = "Not authorized to access this booking"
)

const (
	DATA_INPUT_IS_NOT_NUMBER = "Id param must be a number"
)
