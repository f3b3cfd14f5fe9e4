// Package category maps file names to the folder they are organized into.
//
// A Table is an ordered list of categories, each owning a set of lowercase
// extensions. Classification walks the table in declaration order and the
// first category that claims an extension wins, so an extension listed twice
// (pdf sits in both Documents and Books) resolves to the earlier entry. Names
// nothing claims fall back to Others.
//
// The default table is built once at init and handed out by value; callers
// that need a different layout construct their own with New.
package category
