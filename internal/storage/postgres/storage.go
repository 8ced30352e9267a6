package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests inject
// a pgxmock pool through it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

type reviewRepository struct {
	storage *Storage
}

type passcodeRepository struct {
	storage *Storage
}

type analyticsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) Reviews() repository.ReviewRepository {
	return &reviewRepository{storage: s}
}

func (s *Storage) Passcodes() repository.PasscodeRepository {
	return &passcodeRepository{storage: s}
}

func (s *Storage) Analytics() repository.AnalyticsRepository {
	return &analyticsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            recipient TEXT NOT NULL,
            line1 TEXT NOT NULL,
            line2 TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL,
            postal_code TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(12,2) NOT NULL,
            quantity INT NOT NULL DEFAULT 0,
            status TEXT NOT NULL DEFAULT 'draft',
            categories TEXT[] NOT NULL DEFAULT '{}',
            materials TEXT[] NOT NULL DEFAULT '{}',
            dimensions TEXT NOT NULL DEFAULT '',
            images TEXT[] NOT NULL DEFAULT '{}',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cart_lines (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity INT NOT NULL,
            UNIQUE (user_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            reference TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(id),
            address_id BIGINT NOT NULL REFERENCES addresses(id),
            status TEXT NOT NULL,
            total NUMERIC(12,2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            product_name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price NUMERIC(12,2) NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS reviews (
            id SERIAL PRIMARY KEY,
            product_id BIGINT NOT NULL REFERENCES products(id),
            user_id BIGINT NOT NULL REFERENCES users(id),
            rating INT NOT NULL,
            body TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (product_id, user_id)
        )`,
		`CREATE TABLE IF NOT EXISTS passcode_challenges (
            email TEXT NOT NULL,
            purpose TEXT NOT NULL,
            code_hash TEXT NOT NULL,
            expires_at TIMESTAMPTZ NOT NULL,
            PRIMARY KEY (email, purpose)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cart_lines_user ON cart_lines(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id, is_admin, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, name, passwordHash).Scan(&u.ID, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.Name = name
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, is_admin, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, is_admin, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	const query = `UPDATE users SET password_hash=$2 WHERE email=$1`
	tag, err := r.storage.pool.Exec(ctx, query, email, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, description, price, quantity, status, categories, materials, dimensions, images, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Status,
		&p.Categories, &p.Materials, &p.Dimensions, &p.Images, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, price, quantity, status, categories, materials, dimensions, images)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, created_at, updated_at`
	created := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Quantity, product.Status,
		product.Categories, product.Materials, product.Dimensions, product.Images,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	product, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
              WHERE ($1 = '' OR status = $1) AND ($2 = '' OR $2 = ANY(categories))
              ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, string(filter.Status), filter.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Status,
			&p.Categories, &p.Materials, &p.Dimensions, &p.Images, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update persists catalog fields. Quantity is deliberately excluded: the
// stock ledger is mutated only by checkout and status reconciliation.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	const query = `UPDATE products
                   SET name=$2, description=$3, price=$4, status=$5, categories=$6, materials=$7, dimensions=$8, images=$9, updated_at=NOW()
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Status,
		product.Categories, product.Materials, product.Dimensions, product.Images)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) SetStatus(ctx context.Context, id int64, status model.ProductStatus) error {
	const query = `UPDATE products SET status=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) AddImage(ctx context.Context, id int64, imageID string) error {
	const query = `UPDATE products SET images = array_append(images, $2), updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, imageID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Quantity(ctx context.Context, id int64) (int, error) {
	const query = `SELECT quantity FROM products WHERE id=$1`
	var quantity int
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrProductNotFound
		}
		return 0, err
	}
	return quantity, nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Add(ctx context.Context, userID, productID int64, quantity int) error {
	const query = `INSERT INTO cart_lines (user_id, product_id, quantity)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity`
	if _, err := r.storage.pool.Exec(ctx, query, userID, productID, quantity); err != nil {
		if isForeignKeyViolation(err) {
			return domainErrors.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	const query = `UPDATE cart_lines SET quantity=$3 WHERE user_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, productID int64) error {
	const query = `DELETE FROM cart_lines WHERE user_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	const query = `SELECT c.id, c.user_id, c.product_id, c.quantity, p.name, p.price, p.quantity, p.status, p.images
                   FROM cart_lines c
                   JOIN products p ON p.id = c.product_id
                   WHERE c.user_id=$1 ORDER BY c.id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		var line model.CartLine
		product := &model.Product{}
		if err := rows.Scan(&line.ID, &line.UserID, &line.ProductID, &line.Quantity,
			&product.Name, &product.Price, &product.Quantity, &product.Status, &product.Images); err != nil {
			return nil, err
		}
		product.ID = line.ProductID
		line.Product = product
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	const query = `DELETE FROM cart_lines WHERE user_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}

// --- OrderRepository implementation ---

// checkoutLine is what the locking read of a cart produces: the requested
// quantity next to the live product snapshot.
type checkoutLine struct {
	productID int64
	name      string
	price     decimal.Decimal
	requested int
	available int
}

// CreateFromCart turns the user's cart into a committed order. The whole
// sequence runs in one transaction with the product rows locked, so either
// every line is reserved or nothing changes.
func (r *orderRepository) CreateFromCart(ctx context.Context, userID, addressID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const linesQuery = `SELECT c.product_id, c.quantity, p.name, p.price, p.quantity
                            FROM cart_lines c
                            JOIN products p ON p.id = c.product_id
                            WHERE c.user_id=$1
                            ORDER BY c.id
                            FOR UPDATE OF p`
		rows, err := tx.Query(ctx, linesQuery, userID)
		if err != nil {
			return err
		}

		var lines []checkoutLine
		for rows.Next() {
			var line checkoutLine
			if err := rows.Scan(&line.productID, &line.requested, &line.name, &line.price, &line.available); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, line)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		if len(lines) == 0 {
			return domainErrors.ErrEmptyCart
		}

		created, err := r.createOrderTx(ctx, tx, userID, addressID, lines)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE user_id=$1`, userID); err != nil {
			return err
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CreateBuyNow reserves a single product without touching the cart.
func (r *orderRepository) CreateBuyNow(ctx context.Context, userID, productID int64, quantity int, addressID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const productQuery = `SELECT name, price, quantity FROM products WHERE id=$1 FOR UPDATE`
		line := checkoutLine{productID: productID, requested: quantity}
		err := tx.QueryRow(ctx, productQuery, productID).Scan(&line.name, &line.price, &line.available)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrProductNotFound
			}
			return err
		}

		created, err := r.createOrderTx(ctx, tx, userID, addressID, []checkoutLine{line})
		if err != nil {
			return err
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// createOrderTx validates stock for every line before any write, then
// inserts the order with its item snapshots and decrements the ledger.
func (r *orderRepository) createOrderTx(ctx context.Context, tx pgx.Tx, userID, addressID int64, lines []checkoutLine) (*model.Order, error) {
	var short []string
	for _, line := range lines {
		if line.available < line.requested {
			short = append(short, line.name)
		}
	}
	if len(short) > 0 {
		return nil, &domainErrors.InsufficientStockError{Products: short}
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.price.Mul(decimal.NewFromInt(int64(line.requested))))
	}

	order := &model.Order{
		Reference: uuid.NewString(),
		UserID:    userID,
		AddressID: addressID,
		Status:    model.OrderStatusPending,
		Total:     total,
	}

	const orderQuery = `INSERT INTO orders (reference, user_id, address_id, status, total)
                        VALUES ($1, $2, $3, $4, $5)
                        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, orderQuery, order.Reference, userID, addressID, order.Status, total).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, err
	}

	const itemQuery = `INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price)
                       VALUES ($1, $2, $3, $4, $5)`
	const decrementQuery = `UPDATE products SET quantity = quantity - $2, updated_at=NOW() WHERE id=$1`

	for _, line := range lines {
		if _, err := tx.Exec(ctx, itemQuery, order.ID, line.productID, line.name, line.requested, line.price); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, decrementQuery, line.productID, line.requested); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, model.OrderItem{
			OrderID:     order.ID,
			ProductID:   line.productID,
			ProductName: line.name,
			Quantity:    line.requested,
			UnitPrice:   line.price,
		})
	}

	return order, nil
}

const orderColumns = `id, reference, user_id, address_id, status, total, created_at`

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(&o.ID, &o.Reference, &o.UserID, &o.AddressID, &o.Status, &o.Total, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}

	orders := []model.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.UserID, &o.AddressID, &o.Status, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	index := make(map[int64]*model.Order, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
		index[orders[i].ID] = &orders[i]
	}

	const query = `SELECT id, order_id, product_id, product_name, quantity, unit_price
                   FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		if order, ok := index[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	return rows.Err()
}

// UpdateStatus writes the new status and reconciles the stock ledger with
// cancellation transitions in the same transaction. Entering CANCELLED
// returns every item's quantity to the pool; leaving CANCELLED re-reserves
// it without re-checking availability.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const currentQuery = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var current model.OrderStatus
		if err := tx.QueryRow(ctx, currentQuery, orderID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrOrderNotFound
			}
			return err
		}

		if current == status {
			return nil
		}

		entering := status == model.OrderStatusCancelled
		leaving := current == model.OrderStatusCancelled

		if entering || leaving {
			adjust := `UPDATE products SET quantity = quantity + $2, updated_at=NOW() WHERE id=$1`
			if leaving {
				adjust = `UPDATE products SET quantity = quantity - $2, updated_at=NOW() WHERE id=$1`
			}

			const itemsQuery = `SELECT product_id, quantity FROM order_items WHERE order_id=$1 ORDER BY id`
			rows, err := tx.Query(ctx, itemsQuery, orderID)
			if err != nil {
				return err
			}

			type stockAdjustment struct {
				productID int64
				quantity  int
			}
			var adjustments []stockAdjustment
			for rows.Next() {
				var a stockAdjustment
				if err := rows.Scan(&a.productID, &a.quantity); err != nil {
					rows.Close()
					return err
				}
				adjustments = append(adjustments, a)
			}
			if err := rows.Err(); err != nil {
				rows.Close()
				return err
			}
			rows.Close()

			for _, a := range adjustments {
				if _, err := tx.Exec(ctx, adjust, a.productID, a.quantity); err != nil {
					return err
				}
			}
		}

		const updateQuery = `UPDATE orders SET status=$1 WHERE id=$2`
		_, err := tx.Exec(ctx, updateQuery, status, orderID)
		return err
	})
}

// --- AddressRepository implementation ---

func (r *addressRepository) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	const query = `INSERT INTO addresses (user_id, recipient, line1, line2, city, postal_code, phone)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at`
	created := *address
	err := r.storage.pool.QueryRow(ctx, query,
		address.UserID, address.Recipient, address.Line1, address.Line2,
		address.City, address.PostalCode, address.Phone,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	const query = `SELECT id, user_id, recipient, line1, line2, city, postal_code, phone, created_at FROM addresses WHERE id=$1`
	var a model.Address
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Recipient, &a.Line1, &a.Line2, &a.City, &a.PostalCode, &a.Phone, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	const query = `SELECT id, user_id, recipient, line1, line2, city, postal_code, phone, created_at
                   FROM addresses WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Recipient, &a.Line1, &a.Line2, &a.City, &a.PostalCode, &a.Phone, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *addressRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM addresses WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ReviewRepository implementation ---

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (product_id, user_id, rating, body)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at`
	created := *review
	err := r.storage.pool.QueryRow(ctx, query, review.ProductID, review.UserID, review.Rating, review.Body).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	const query = `SELECT id, product_id, user_id, rating, body, created_at
                   FROM reviews WHERE product_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(&review.ID, &review.ProductID, &review.UserID, &review.Rating, &review.Body, &review.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM reviews WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- PasscodeRepository implementation ---

func (r *passcodeRepository) Upsert(ctx context.Context, email string, purpose model.PasscodePurpose, codeHash string, expiresAt time.Time) error {
	const query = `INSERT INTO passcode_challenges (email, purpose, code_hash, expires_at)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (email, purpose) DO UPDATE SET code_hash = EXCLUDED.code_hash, expires_at = EXCLUDED.expires_at`
	_, err := r.storage.pool.Exec(ctx, query, email, purpose, codeHash, expiresAt)
	return err
}

func (r *passcodeRepository) Get(ctx context.Context, email string, purpose model.PasscodePurpose) (*model.PasscodeChallenge, error) {
	const query = `SELECT email, purpose, code_hash, expires_at FROM passcode_challenges WHERE email=$1 AND purpose=$2`
	var c model.PasscodeChallenge
	err := r.storage.pool.QueryRow(ctx, query, email, purpose).Scan(&c.Email, &c.Purpose, &c.CodeHash, &c.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *passcodeRepository) Delete(ctx context.Context, email string, purpose model.PasscodePurpose) error {
	const query = `DELETE FROM passcode_challenges WHERE email=$1 AND purpose=$2`
	_, err := r.storage.pool.Exec(ctx, query, email, purpose)
	return err
}

func (r *passcodeRepository) PurgeExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM passcode_challenges WHERE expires_at < NOW()`
	tag, err := r.storage.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --- AnalyticsRepository implementation ---

func (r *analyticsRepository) SalesByDay(ctx context.Context, from, to time.Time) ([]model.SalesPoint, error) {
	const query = `SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(total), 0)
                   FROM orders
                   WHERE created_at >= $1 AND created_at < $2 AND status <> $3
                   GROUP BY day ORDER BY day`
	rows, err := r.storage.pool.Query(ctx, query, from, to, model.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SalesPoint
	for rows.Next() {
		var point model.SalesPoint
		if err := rows.Scan(&point.Day, &point.Orders, &point.Revenue); err != nil {
			return nil, err
		}
		result = append(result, point)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error) {
	const query = `SELECT oi.product_id, oi.product_name, SUM(oi.quantity)::bigint, SUM(oi.unit_price * oi.quantity)
                   FROM order_items oi
                   JOIN orders o ON o.id = oi.order_id
                   WHERE o.status <> $1
                   GROUP BY oi.product_id, oi.product_name
                   ORDER BY SUM(oi.quantity) DESC
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, model.OrderStatusCancelled, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ProductSales
	for rows.Next() {
		var sales model.ProductSales
		if err := rows.Scan(&sales.ProductID, &sales.ProductName, &sales.Units, &sales.Revenue); err != nil {
			return nil, err
		}
		result = append(result, sales)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
