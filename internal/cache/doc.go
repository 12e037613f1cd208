// Hobbyrec - Hybrid Hobby Recommendations for Active Retirees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hobbyrec

// Package cache provides a small generic TTL cache.
//
// The database package uses it to keep the hobby catalog in memory between
// recommendation requests:
//
//	catalog := cache.NewTTL[string, []recommend.CatalogItem](time.Minute)
//	if items, ok := catalog.Get("all"); ok {
//	    return items, nil
//	}
package cache
