package db

import (
	"context"
	"fmt"
	"math"
	"time"

	"rentora/models"
)

// CategoryCount is one row of the popular-category ranking.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Snapshot is the dashboard aggregate. Best-effort: the queries behind it
// are independent reads, not a single point-in-time transaction.
type Snapshot struct {
	TotalVendors     int64 `json:"totalVendors"`
	ActiveVendors    int64 `json:"activeVendors"`
	SuspendedVendors int64 `json:"suspendedVendors"`
	PendingVendors   int64 `json:"pendingVendors"`

	TotalBranches  int64 `json:"totalBranches"`
	NewBranches24h int64 `json:"newBranches24h"`

	DailyTransactions int64 `json:"dailyTransactions"`
	MonthlyRevenue    int64 `json:"monthlyRevenue"`
	InvoicesThisMonth int64 `json:"invoicesThisMonth"`
	AlreadyPaid       int64 `json:"alreadyPaid"`
	Outstanding       int64 `json:"outstanding"`

	WeeklyTrendPercent int             `json:"weeklyTrendPercent"`
	PopularCategories  []CategoryCount `json:"popularCategories"`
	WeeklyTrend        []int64         `json:"weeklyTrend"`
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// Weeks start on Sunday, matching the dashboard the upstream frontend ships.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// trendPercent is defined as 0 when last is 0 so an idle previous week never
// divides by zero.
func trendPercent(this, last int64) int {
	if last == 0 {
		return 0
	}
	return int(math.Round(float64(this-last) / float64(last) * 100))
}

func (r *Repo) countWhere(ctx context.Context, model any, query string, args ...any) (int64, error) {
	var n int64
	q := r.DB.WithContext(ctx).Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	err := q.Count(&n).Error
	return n, err
}

func (r *Repo) sumGoodsWhere(ctx context.Context, query string, args ...any) (int64, error) {
	var total int64
	q := r.DB.WithContext(ctx).Model(&models.Goods{}).
		Select("COALESCE(SUM(total_price), 0)")
	if query != "" {
		q = q.Where(query, args...)
	}
	err := q.Scan(&total).Error
	return total, err
}

// DashboardStats computes the full snapshot relative to now. Read-only;
// an empty dataset yields zeros, an empty ranking and a flat 7-day trend.
func (r *Repo) DashboardStats(ctx context.Context, now time.Time) (*Snapshot, error) {
	s := &Snapshot{
		PopularCategories: []CategoryCount{},
		WeeklyTrend:       make([]int64, 0, 7),
	}
	var err error

	if s.TotalVendors, err = r.countWhere(ctx, &models.Vendor{}, ""); err != nil {
		return nil, fmt.Errorf("total vendors: %w", err)
	}
	if s.ActiveVendors, err = r.countWhere(ctx, &models.Vendor{}, "status = ?", models.VendorActive); err != nil {
		return nil, fmt.Errorf("active vendors: %w", err)
	}
	if s.SuspendedVendors, err = r.countWhere(ctx, &models.Vendor{}, "status = ?", models.VendorSuspended); err != nil {
		return nil, fmt.Errorf("suspended vendors: %w", err)
	}
	if s.PendingVendors, err = r.countWhere(ctx, &models.Vendor{}, "status = ?", models.VendorPending); err != nil {
		return nil, fmt.Errorf("pending vendors: %w", err)
	}

	if s.TotalBranches, err = r.countWhere(ctx, &models.VendorBranch{}, ""); err != nil {
		return nil, fmt.Errorf("total branches: %w", err)
	}
	if s.NewBranches24h, err = r.countWhere(ctx, &models.VendorBranch{},
		"created_at >= ?", now.Add(-24*time.Hour)); err != nil {
		return nil, fmt.Errorf("new branches: %w", err)
	}

	if s.DailyTransactions, err = r.countWhere(ctx, &models.Goods{},
		"created_at >= ? AND created_at <= ?", startOfDay(now), endOfDay(now)); err != nil {
		return nil, fmt.Errorf("daily transactions: %w", err)
	}

	// Monthly revenue and this month's invoice total are the same figure by
	// definition, so one query feeds both fields.
	if s.MonthlyRevenue, err = r.sumGoodsWhere(ctx,
		"created_at >= ? AND created_at <= ?", startOfMonth(now), endOfMonth(now)); err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	s.InvoicesThisMonth = s.MonthlyRevenue

	if s.AlreadyPaid, err = r.sumGoodsWhere(ctx, "status = ?", true); err != nil {
		return nil, fmt.Errorf("paid total: %w", err)
	}
	if s.Outstanding, err = r.sumGoodsWhere(ctx, "status = ?", false); err != nil {
		return nil, fmt.Errorf("outstanding total: %w", err)
	}

	thisWeekStart := startOfWeek(now)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)
	thisWeek, err := r.countWhere(ctx, &models.Goods{}, "created_at >= ?", thisWeekStart)
	if err != nil {
		return nil, fmt.Errorf("this week count: %w", err)
	}
	lastWeek, err := r.countWhere(ctx, &models.Goods{},
		"created_at >= ? AND created_at <= ?", lastWeekStart, thisWeekStart.Add(-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("last week count: %w", err)
	}
	s.WeeklyTrendPercent = trendPercent(thisWeek, lastWeek)

	if err := r.DB.WithContext(ctx).Model(&models.Goods{}).
		Select(fmt.Sprintf("COALESCE(%s.title, '') AS name, COUNT(%s.id) AS count",
			models.GoodsCategoryTable, models.GoodsTable)).
		Joins(fmt.Sprintf("LEFT JOIN %s ON %s.id = %s.category_id",
			models.GoodsCategoryTable, models.GoodsCategoryTable, models.GoodsTable)).
		Group(models.GoodsCategoryTable + ".title").
		Order(fmt.Sprintf("COUNT(%s.id) DESC", models.GoodsTable)).
		Limit(5).
		Scan(&s.PopularCategories).Error; err != nil {
		return nil, fmt.Errorf("popular categories: %w", err)
	}

	// Last 7 calendar days, oldest first, today included.
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		n, err := r.countWhere(ctx, &models.Goods{},
			"created_at >= ? AND created_at <= ?", startOfDay(day), endOfDay(day))
		if err != nil {
			return nil, fmt.Errorf("trend day %d: %w", i, err)
		}
		s.WeeklyTrend = append(s.WeeklyTrend, n)
	}

	return s, nil
}
