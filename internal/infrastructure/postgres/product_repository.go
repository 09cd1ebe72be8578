package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockledger-api/internal/domain"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
	"github.com/tu-usuario/stockledger-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, owner_id, name, quantity, price, category_id, supplier_id, min_quantity, max_quantity, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con su cantidad inicial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.OwnerID, product.Name, product.Quantity, product.Price,
		product.CategoryID, product.SupplierID, product.MinQuantity, product.MaxQuantity,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID y owner. (nil, nil) si no existe para ese owner.
func (r *ProductRepo) GetByID(id, ownerID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND owner_id = $2`
	p, err := r.scanProduct(r.q.QueryRow(context.Background(), query, id, ownerID))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT ... FOR UPDATE)
// hasta el fin de la transacción. (nil, nil) si no existe para ese owner.
func (r *ProductRepo) GetForUpdate(id, ownerID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND owner_id = $2 FOR UPDATE`
	p, err := r.scanProduct(r.q.QueryRow(context.Background(), query, id, ownerID))
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// UpdateQuantity fija la cantidad materializada (uso exclusivo del ledger, dentro de tx).
func (r *ProductRepo) UpdateQuantity(id, ownerID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $3, updated_at = now() WHERE id = $1 AND owner_id = $2`,
		id, ownerID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// Update actualiza un producto existente. No modifica Quantity (se maneja vía movimientos).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, price = $4, category_id = $5, supplier_id = $6, min_quantity = $7, max_quantity = $8, updated_at = $9
		WHERE id = $1 AND owner_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.OwnerID, product.Name, product.Price,
		product.CategoryID, product.SupplierID, product.MinQuantity, product.MaxQuantity,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOwner lista productos del owner con nombres de categoría y proveedor.
func (r *ProductRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.ProductView, error) {
	query := `
		SELECT p.id, p.owner_id, p.name, p.quantity, p.price, p.category_id, p.supplier_id,
		       p.min_quantity, p.max_quantity, p.created_at, p.updated_at,
		       c.name AS category_name, s.name AS supplier_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE p.owner_id = $1
		ORDER BY p.name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProductViews(rows)
}

// ListLowStock productos con umbral mínimo definido y cantidad en o por debajo de él.
func (r *ProductRepo) ListLowStock(ownerID string) ([]*entity.ProductView, error) {
	query := `
		SELECT p.id, p.owner_id, p.name, p.quantity, p.price, p.category_id, p.supplier_id,
		       p.min_quantity, p.max_quantity, p.created_at, p.updated_at,
		       c.name AS category_name, s.name AS supplier_name
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		WHERE p.owner_id = $1 AND p.min_quantity > 0 AND p.quantity <= p.min_quantity
		ORDER BY p.quantity`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanProductViews(rows)
}

// Delete elimina un producto del owner.
func (r *ProductRepo) Delete(id, ownerID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Quantity, &p.Price,
		&p.CategoryID, &p.SupplierID, &p.MinQuantity, &p.MaxQuantity,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanProductViews(rows pgx.Rows) ([]*entity.ProductView, error) {
	var list []*entity.ProductView
	for rows.Next() {
		var p entity.ProductView
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.Quantity, &p.Price,
			&p.CategoryID, &p.SupplierID, &p.MinQuantity, &p.MaxQuantity,
			&p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName, &p.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
