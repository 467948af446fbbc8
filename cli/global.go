package main

// <constants>
const configJSONErrMsg = `could not serialize config JSON: %s`
const resultJSONErrMsg = `could not serialize result JSON: %s`

const defaultHashAlgorithm = `sha-256`

// </constants>
