package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/mbelkin/newsnotes/internal/newsroom"
)

//go:generate zenrpc

// NewsService provides read-only RPC methods over the public news surface.
type NewsService struct {
	zenrpc.Service
	manager *newsroom.Manager
}

func NewNewsService(manager *newsroom.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List retrieves the home page news sorted by date DESC.
//
//zenrpc:return list of news
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context) ([]News, error) {
	newsList, err := s.manager.HomePage(ctx)
	if err != nil {
		return nil, err
	}

	return NewNewsList(newsList), nil
}

// Count returns the total number of news items.
//
//zenrpc:return count of news items
//zenrpc:500 internal server error
func (s *NewsService) Count(ctx context.Context) (int, error) {
	return s.manager.NewsCount(ctx)
}

// ByID retrieves a single news item with its comments in creation order.
//
//zenrpc:id news numeric ID
//zenrpc:return news with comments
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) ByID(ctx context.Context, req NewsByIDRequest) (*NewsWithComments, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	news, err := s.manager.NewsByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	comments, err := s.manager.Comments(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &NewsWithComments{
		News:     NewNews(*news),
		Comments: NewComments(comments),
	}, nil
}
