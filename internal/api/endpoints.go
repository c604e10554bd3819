package api

// Resource path builders, relative to the configured base URL.

func Login() string { return "/auth/login" }

func Users() string         { return "/users" }
func User(id string) string { return "/users/" + id }

func Products() string         { return "/products" }
func Product(id string) string { return "/products/" + id }

func Orders() string         { return "/orders" }
func Order(id string) string { return "/orders/" + id }

func Reviews() string         { return "/reviews" }
func Review(id string) string { return "/reviews/" + id }

func Contacts() string         { return "/contacts" }
func Contact(id string) string { return "/contacts/" + id }

func Blogs() string         { return "/blogs" }
func Blog(id string) string { return "/blogs/" + id }

func Bookings() string { return "/bookings" }
func Countries() string { return "/countries" }
func Trips() string     { return "/trips" }
