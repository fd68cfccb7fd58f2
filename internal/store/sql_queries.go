package store

const (
	offerColumns = `id, title, description, original_price, discounted_price,
    valid_from, valid_until, image_key, image_url, is_hidden, created_at, updated_at`

	createOffer = `INSERT INTO offers (id, title, description, original_price, discounted_price, valid_from, valid_until, image_key, image_url, is_hidden)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + offerColumns + `;`

	getOfferByID = `SELECT ` + offerColumns + `
    FROM offers
    WHERE id = $1;`

	listAllOffers = `SELECT ` + offerColumns + `
    FROM offers
    ORDER BY created_at DESC;`

	listPublicOffers = `SELECT ` + offerColumns + `
    FROM offers
    WHERE is_hidden = FALSE AND valid_from <= $1 AND valid_until >= $1
    ORDER BY created_at DESC;`

	deleteOffer = `DELETE FROM offers
    WHERE id = $1;`

	toggleOfferVisibility = `UPDATE offers
    SET is_hidden = NOT is_hidden, updated_at = now()
    WHERE id = $1
    RETURNING ` + offerColumns + `;`

	countOffers = `SELECT count(*) FROM offers;`

	countActiveOffers = `SELECT count(*)
    FROM offers
    WHERE is_hidden = FALSE AND valid_from <= $1 AND valid_until >= $1;`

	adminColumns = `id, email, name, password_hash, created_at`

	createAdmin = `INSERT INTO admins (id, email, name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + adminColumns + `;`

	findAdminByEmail = `SELECT ` + adminColumns + `
    FROM admins
    WHERE lower(email) = lower($1);`

	countAdmins = `SELECT count(*) FROM admins;`
)
