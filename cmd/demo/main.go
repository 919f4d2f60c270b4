// Demonstration driver: builds the sample site tree in memory and prints
// breadcrumb, tag-search, and recency results to stdout.
package main

import (
	"fmt"
	"time"

	"content-repository/internal/page"
)

func main() {
	now := time.Now()

	home := page.New("Home", "/", []string{"main", "homepage"})
	products := page.NewAt("Products", "/products", []string{"catalog", "products"}, now.AddDate(0, 0, -2))
	laptops := page.NewAt("Laptops", "/products/laptops", []string{"computers", "laptops", "electronics"}, now.AddDate(0, 0, -3))
	gaming := page.NewAt("Gaming Laptops", "/products/laptops/gaming", []string{"gaming", "laptops", "high-performance"}, now.AddDate(0, 0, -8))
	business := page.NewAt("Business Laptops", "/products/laptops/business", []string{"business", "laptops", "professional"}, now.AddDate(0, 0, -18))
	services := page.NewAt("Services", "/services", []string{"support", "services"}, now.AddDate(0, 0, -1))
	support := page.New("Support", "/services/support", []string{"help", "support", "technical"})

	home.AddChild(products)
	home.AddChild(services)
	products.AddChild(laptops)
	laptops.AddChild(gaming)
	laptops.AddChild(business)
	services.AddChild(support)

	fmt.Println("Content Repository demo")
	fmt.Println("=======================")

	fmt.Println("\nBreadcrumb tests:")
	fmt.Println("Gaming page: " + gaming.Breadcrumb())
	fmt.Println("Support page: " + support.Breadcrumb())

	fmt.Println("\nSearching for 'laptops' tag:")
	for _, p := range home.SearchByTag("laptops") {
		fmt.Println("Found: " + p.Title())
	}

	fmt.Println("\nSearching for 'support' tag:")
	for _, p := range home.SearchByTag("support") {
		fmt.Println("Found: " + p.Title())
	}

	fmt.Println("\nPages modified in last 3 days:")
	for _, p := range home.RecentlyModified(3) {
		fmt.Printf("%s - %s\n", p.Title(), p.LastModified().Format(time.RFC1123))
	}

	fmt.Println("\nPages modified in last 15 days:")
	for _, p := range home.RecentlyModified(15) {
		fmt.Printf("%s - %s\n", p.Title(), p.LastModified().Format(time.RFC1123))
	}
}
