package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// ForumRepository handles forum post and comment database operations
type ForumRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(db *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePost inserts a new forum post and returns its ID
func (r *ForumRepository) CreatePost(ctx context.Context, post *models.ForumPost) (int64, error) {
	sql, args, err := r.sb.Insert("forum_posts").
		Columns("author_id", "title", "body").
		Values(post.AuthorID, post.Title, post.Body).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create post query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting forum post: %w", err)
	}

	logger.Info().Int64("postID", id).Int64("authorID", post.AuthorID).Msg("Forum post created")
	return id, nil
}

func (r *ForumRepository) selectPost() squirrel.SelectBuilder {
	return r.sb.Select(
		"p.id", "p.author_id", "p.title", "p.body", "p.created_at", "p.updated_at",
		"u.first_name || ' ' || u.last_name AS author_name",
		"(SELECT COUNT(*) FROM forum_comments c WHERE c.post_id = p.id) AS comment_count",
	).From("forum_posts p").Join("users u ON p.author_id = u.id")
}

// GetPost retrieves a post with its author name and comment count
func (r *ForumRepository) GetPost(ctx context.Context, id int64) (*models.ForumPost, error) {
	sql, args, err := r.selectPost().Where(squirrel.Eq{"p.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	var p models.ForumPost
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt,
		&p.AuthorName, &p.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error querying forum post ID=%d: %w", id, err)
	}

	return &p, nil
}

// ListPosts retrieves posts newest first with pagination
func (r *ForumRepository) ListPosts(ctx context.Context, offset uint64, limit int) ([]*models.ForumPost, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM forum_posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count forum posts: %w", err)
	}
	if total == 0 {
		return []*models.ForumPost{}, 0, nil
	}

	sql, args, err := r.selectPost().
		OrderBy("p.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query forum posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.ForumPost
	for rows.Next() {
		var p models.ForumPost
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt,
			&p.AuthorName, &p.CommentCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan forum post row: %w", err)
		}
		posts = append(posts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating forum post rows: %w", err)
	}

	return posts, total, nil
}

// DeletePost removes a post if the caller authored it. Admins pass authorID 0
// to delete any post. Comments go with the post via ON DELETE CASCADE.
func (r *ForumRepository) DeletePost(ctx context.Context, id, authorID int64) error {
	where := squirrel.And{squirrel.Eq{"id": id}}
	if authorID != 0 {
		where = append(where, squirrel.Eq{"author_id": authorID})
	}

	sql, args, err := r.sb.Delete("forum_posts").Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete post query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting forum post ID=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetPost(ctx, id); err != nil {
			return err
		}
		return apperrors.NewForbiddenError("only the author can delete this post")
	}

	logger.Info().Int64("postID", id).Msg("Forum post deleted")
	return nil
}

// CreateComment inserts a reply on an existing post and returns its ID
func (r *ForumRepository) CreateComment(ctx context.Context, comment *models.ForumComment) (int64, error) {
	sql, args, err := r.sb.Insert("forum_comments").
		Columns("post_id", "author_id", "body").
		Values(comment.PostID, comment.AuthorID, comment.Body).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create comment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, apperrors.ErrPostNotFound
		}
		return 0, fmt.Errorf("error inserting forum comment: %w", err)
	}

	return id, nil
}

// ListComments retrieves a post's comments oldest first
func (r *ForumRepository) ListComments(ctx context.Context, postID int64) ([]*models.ForumComment, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.post_id", "c.author_id", "c.body", "c.created_at",
		"u.first_name || ' ' || u.last_name AS author_name",
	).From("forum_comments c").
		Join("users u ON c.author_id = u.id").
		Where(squirrel.Eq{"c.post_id": postID}).
		OrderBy("c.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query forum comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.ForumComment
	for rows.Next() {
		var c models.ForumComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan forum comment row: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating forum comment rows: %w", err)
	}

	return comments, nil
}
