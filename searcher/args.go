package searcher

// Search window bounds. Any evaluation lies strictly inside (-Infinity, Infinity).
const Infinity = 10000000
